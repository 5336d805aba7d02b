package store

import "clinibook/internal/domain"

// Seed returns the built-in example collection used whenever no persisted
// state exists. Callers receive a fresh copy and may mutate it freely.
func Seed() []domain.Appointment {
	return []domain.Appointment{
		{
			ID:          "1",
			PatientName: "Rajesh Kumar",
			Date:        "2025-11-06",
			Time:        "09:00",
			Duration:    30,
			DoctorName:  "Dr. Sarah Johnson",
			Status:      domain.StatusUpcoming,
			Mode:        domain.ModeInPerson,
			Type:        "General Checkup",
		},
		{
			ID:          "2",
			PatientName: "Priya Sharma",
			Date:        "2025-11-06",
			Time:        "09:30",
			Duration:    30,
			DoctorName:  "Dr. Michael Chen",
			Status:      domain.StatusUpcoming,
			Mode:        domain.ModeVideo,
			Type:        "Follow-up",
		},
		{
			ID:          "3",
			PatientName: "Amit Patel",
			Date:        "2025-11-06",
			Time:        "10:00",
			Duration:    45,
			DoctorName:  "Dr. Sarah Johnson",
			Status:      domain.StatusCompleted,
			Mode:        domain.ModeInPerson,
			Type:        "Check-up",
		},
		{
			ID:          "4",
			PatientName: "Sneha Reddy",
			Date:        "2025-11-06",
			Time:        "10:30",
			Duration:    30,
			DoctorName:  "Dr. David Lee",
			Status:      domain.StatusUpcoming,
			Mode:        domain.ModeInPerson,
			Type:        "Consultation",
		},
		{
			ID:          "5",
			PatientName: "Vikram Singh",
			Date:        "2025-11-06",
			Time:        "11:00",
			Duration:    30,
			DoctorName:  "Dr. Emily White",
			Status:      domain.StatusCancelled,
			Mode:        domain.ModeVideo,
			Type:        "Follow-up",
		},
		{
			ID:          "6",
			PatientName: "Anjali Gupta",
			Date:        "2025-11-07",
			Time:        "14:00",
			Duration:    60,
			DoctorName:  "Dr. Sarah Johnson",
			Status:      domain.StatusScheduled,
			Mode:        domain.ModeInPerson,
			Type:        "Surgery Prep",
		},
		{
			ID:          "7",
			PatientName: "Rohan Das",
			Date:        "2025-11-07",
			Time:        "15:30",
			Duration:    30,
			DoctorName:  "Dr. Michael Chen",
			Status:      domain.StatusScheduled,
			Mode:        domain.ModePhone,
			Type:        "Quick Consult",
		},
	}
}
