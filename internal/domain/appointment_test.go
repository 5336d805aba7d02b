package domain

import (
	"testing"
	"time"
)

func appt(doctor, date, start string, duration int, status Status) Appointment {
	return Appointment{
		PatientName: "patient",
		Date:        date,
		Time:        start,
		Duration:    duration,
		DoctorName:  doctor,
		Status:      status,
		Mode:        ModeInPerson,
	}
}

func TestStartEnd(t *testing.T) {
	a := appt("Dr. Sarah Johnson", "2025-11-06", "09:00", 30, StatusUpcoming)

	start, end, err := a.StartEnd()
	if err != nil {
		t.Fatalf("StartEnd error: %v", err)
	}
	wantStart := time.Date(2025, 11, 6, 9, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if got := end.Sub(start); got != 30*time.Minute {
		t.Fatalf("end-start = %v, want %v", got, 30*time.Minute)
	}
}

func TestStartEnd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		a    Appointment
	}{
		{name: "bad date", a: appt("d", "06-11-2025", "09:00", 30, StatusScheduled)},
		{name: "bad time", a: appt("d", "2025-11-06", "9am", 30, StatusScheduled)},
		{name: "empty", a: appt("d", "", "", 30, StatusScheduled)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.a.StartEnd(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Appointment
		want bool
	}{
		{
			name: "nested interval",
			a:    appt("d", "2025-11-06", "09:00", 60, StatusUpcoming),
			b:    appt("d", "2025-11-06", "09:15", 30, StatusUpcoming),
			want: true,
		},
		{
			name: "partial overlap",
			a:    appt("d", "2025-11-06", "09:00", 30, StatusUpcoming),
			b:    appt("d", "2025-11-06", "09:29", 1, StatusUpcoming),
			want: true,
		},
		{
			name: "back to back",
			a:    appt("d", "2025-11-06", "09:00", 30, StatusUpcoming),
			b:    appt("d", "2025-11-06", "09:30", 30, StatusUpcoming),
			want: false,
		},
		{
			name: "different day",
			a:    appt("d", "2025-11-06", "09:00", 30, StatusUpcoming),
			b:    appt("d", "2025-11-07", "09:00", 30, StatusUpcoming),
			want: false,
		},
		{
			name: "interval crossing midnight",
			a:    appt("d", "2025-11-06", "23:45", 30, StatusUpcoming),
			b:    appt("d", "2025-11-07", "00:00", 30, StatusUpcoming),
			want: true,
		},
		{
			name: "unparseable never overlaps",
			a:    appt("d", "not-a-date", "09:00", 30, StatusUpcoming),
			b:    appt("d", "2025-11-06", "09:00", 30, StatusUpcoming),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []Appointment{
		withID(appt("Dr. Sarah Johnson", "2025-11-06", "09:00", 30, StatusUpcoming), "1"),
		withID(appt("Dr. Sarah Johnson", "2025-11-06", "10:00", 45, StatusCompleted), "3"),
		withID(appt("Dr. Emily White", "2025-11-06", "11:00", 30, StatusCancelled), "5"),
	}

	tests := []struct {
		name      string
		candidate Appointment
		wantID    string
		wantFound bool
	}{
		{
			name:      "overlaps first slot",
			candidate: appt("Dr. Sarah Johnson", "2025-11-06", "09:15", 30, StatusScheduled),
			wantID:    "1",
			wantFound: true,
		},
		{
			name:      "back to back is free",
			candidate: appt("Dr. Sarah Johnson", "2025-11-06", "09:30", 30, StatusScheduled),
			wantFound: false,
		},
		{
			name:      "same window different doctor",
			candidate: appt("Dr. David Lee", "2025-11-06", "09:00", 30, StatusScheduled),
			wantFound: false,
		},
		{
			name:      "cancelled never blocks",
			candidate: appt("Dr. Emily White", "2025-11-06", "11:00", 30, StatusScheduled),
			wantFound: false,
		},
		{
			name:      "same doctor other day",
			candidate: appt("Dr. Sarah Johnson", "2025-11-07", "09:00", 30, StatusScheduled),
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindConflict(tt.candidate, existing)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && got.ID != tt.wantID {
				t.Fatalf("conflicting id = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestFindConflict_FirstInStorageOrderWins(t *testing.T) {
	// Two existing slots both overlap the candidate; the one stored first is
	// reported even though the other starts earlier.
	existing := []Appointment{
		withID(appt("d", "2025-11-06", "09:30", 30, StatusUpcoming), "later-start"),
		withID(appt("d", "2025-11-06", "09:00", 30, StatusUpcoming), "earlier-start"),
	}
	candidate := appt("d", "2025-11-06", "09:00", 60, StatusScheduled)

	got, found := FindConflict(candidate, existing)
	if !found {
		t.Fatalf("expected a conflict")
	}
	if got.ID != "later-start" {
		t.Fatalf("conflicting id = %q, want %q", got.ID, "later-start")
	}
}

func withID(a Appointment, id string) Appointment {
	a.ID = id
	return a
}
