package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusUpcoming  Status = "Upcoming"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Statuses is the flat label set carried by appointments. There is no
// transition table: any status may be replaced by any other.
var Statuses = []Status{StatusScheduled, StatusUpcoming, StatusCompleted, StatusCancelled}

func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type Mode string

const (
	ModeInPerson Mode = "In-Person"
	ModeVideo    Mode = "Video"
	ModePhone    Mode = "Phone"
)

var Modes = []Mode{ModeInPerson, ModeVideo, ModePhone}

func ValidMode(m Mode) bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment is a scheduled booking of a patient with a doctor for a time
// window. Date and Time are naive local strings; the booking core does no
// timezone handling.
type Appointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	DoctorName  string `json:"doctorName"`
	Status      Status `json:"status"`
	Mode        Mode   `json:"mode"`
	Type        string `json:"type"`
}

// StartEnd places the appointment on a single linear timeline built from its
// date and start time. The end instant is start plus Duration minutes.
func (a Appointment) StartEnd() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout+" "+TimeLayout, a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date or time: %w", err)
	}
	end := start.Add(time.Duration(a.Duration) * time.Minute)
	return start, end, nil
}

// Overlaps reports whether the two appointments occupy intersecting half-open
// intervals [start, end). Back-to-back bookings, where one ends exactly when
// the other starts, do not overlap. Records whose date or time cannot be
// parsed never overlap anything.
func Overlaps(a, b Appointment) bool {
	aStart, aEnd, err := a.StartEnd()
	if err != nil {
		return false
	}
	bStart, bEnd, err := b.StartEnd()
	if err != nil {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict scans all in collection order and returns the first
// non-cancelled appointment with the candidate's doctor and date whose
// interval overlaps the candidate's. The tie-break is storage order, not
// start time.
func FindConflict(candidate Appointment, all []Appointment) (Appointment, bool) {
	for _, existing := range all {
		if existing.DoctorName != candidate.DoctorName || existing.Date != candidate.Date {
			continue
		}
		if existing.Status == StatusCancelled {
			continue
		}
		if Overlaps(candidate, existing) {
			return existing, true
		}
	}
	return Appointment{}, false
}
