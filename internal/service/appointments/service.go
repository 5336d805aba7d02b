// Package appointments implements the booking operations consumed by the
// presentation layer: filtered listing, conflict-checked creation, status
// updates and deletion.
package appointments

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"clinibook/internal/domain"
	"clinibook/internal/store"
)

const defaultType = "General Consultation"

// errUnchanged aborts a store.Update without writing anything back.
var errUnchanged = errors.New("unchanged")

type Service struct {
	store store.AppointmentStore
}

func NewService(st store.AppointmentStore) *Service {
	return &Service{store: st}
}

type CreateInput struct {
	PatientName string
	Date        string
	Time        string
	Duration    int
	DoctorName  string
	Status      domain.Status
	Mode        domain.Mode
	Type        string
}

// Create books a new appointment. The conflict check and the append run in a
// single store update, so two concurrent creates cannot both claim the same
// window.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	patient := strings.TrimSpace(in.PatientName)
	if patient == "" {
		return domain.Appointment{}, validationError("patientName is required")
	}
	doctor := strings.TrimSpace(in.DoctorName)
	if doctor == "" {
		return domain.Appointment{}, validationError("doctorName is required")
	}
	if in.Date == "" {
		return domain.Appointment{}, validationError("date is required")
	}
	if in.Time == "" {
		return domain.Appointment{}, validationError("time is required")
	}
	if in.Duration <= 0 {
		return domain.Appointment{}, validationError("duration must be at least 1 minute")
	}
	if in.Mode == "" {
		return domain.Appointment{}, validationError("mode is required")
	}
	if !domain.ValidMode(in.Mode) {
		return domain.Appointment{}, validationError("invalid mode")
	}

	status := in.Status
	if status == "" {
		status = domain.StatusScheduled
	}
	if !domain.ValidStatus(status) {
		return domain.Appointment{}, validationError("invalid status")
	}

	apptType := strings.TrimSpace(in.Type)
	if apptType == "" {
		apptType = defaultType
	}

	candidate := domain.Appointment{
		PatientName: patient,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		DoctorName:  doctor,
		Status:      status,
		Mode:        in.Mode,
		Type:        apptType,
	}
	if _, _, err := candidate.StartEnd(); err != nil {
		return domain.Appointment{}, validationError("invalid date or time format")
	}

	var created domain.Appointment
	err := s.store.Update(ctx, func(appts []domain.Appointment) ([]domain.Appointment, error) {
		if _, ok := domain.FindConflict(candidate, appts); ok {
			return nil, &ConflictError{Doctor: doctor}
		}
		created = candidate
		created.ID = uuid.NewString()
		return append(appts, created), nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return created, nil
}

// List returns the appointments matching the filter, preserving storage
// order.
func (s *Service) List(ctx context.Context, f domain.Filter) ([]domain.Appointment, error) {
	appts, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(appts), nil
}

// UpdateStatus replaces the status of the appointment with the given id and
// returns the updated record. A missing id is not an error: the second
// return is false and nothing is written. No interval re-check is performed,
// so any status may be set on any appointment.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Appointment, bool, error) {
	if !domain.ValidStatus(status) {
		return domain.Appointment{}, false, validationError("invalid status")
	}

	var updated domain.Appointment
	err := s.store.Update(ctx, func(appts []domain.Appointment) ([]domain.Appointment, error) {
		for i := range appts {
			if appts[i].ID == id {
				appts[i].Status = status
				updated = appts[i]
				return appts, nil
			}
		}
		return nil, errUnchanged
	})
	if errors.Is(err, errUnchanged) {
		return domain.Appointment{}, false, nil
	}
	if err != nil {
		return domain.Appointment{}, false, err
	}
	return updated, true, nil
}

// Delete removes the appointment with the given id. Deleting an id that does
// not exist is a no-op that still reports success.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	err := s.store.Update(ctx, func(appts []domain.Appointment) ([]domain.Appointment, error) {
		kept := make([]domain.Appointment, 0, len(appts))
		for _, a := range appts {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
