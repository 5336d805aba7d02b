package domain

import "strings"

// Filter selects appointments from a collection. Every field is optional; the
// zero value matches everything. Present fields compose conjunctively.
type Filter struct {
	// Date keeps records whose date string matches exactly.
	Date string
	// Status keeps records with exactly this status label.
	Status Status
	// Doctor keeps records whose doctor name matches exactly.
	Doctor string
	// Search keeps records where the text is a case-insensitive substring of
	// the patient name or the doctor name.
	Search string
}

func (f Filter) Matches(a Appointment) bool {
	if f.Date != "" && a.Date != f.Date {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Doctor != "" && a.DoctorName != f.Doctor {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.PatientName), q) &&
			!strings.Contains(strings.ToLower(a.DoctorName), q) {
			return false
		}
	}
	return true
}

// Apply returns the matching subset of appts in their original order. The
// input slice is never mutated.
func (f Filter) Apply(appts []Appointment) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
