package domain

import (
	"reflect"
	"testing"
)

func filterFixture() []Appointment {
	return []Appointment{
		{ID: "1", PatientName: "Rajesh Kumar", Date: "2025-11-06", DoctorName: "Dr. Sarah Johnson", Status: StatusUpcoming},
		{ID: "2", PatientName: "Priya Sharma", Date: "2025-11-06", DoctorName: "Dr. Michael Chen", Status: StatusUpcoming},
		{ID: "3", PatientName: "Amit Patel", Date: "2025-11-06", DoctorName: "Dr. Sarah Johnson", Status: StatusCompleted},
		{ID: "4", PatientName: "Sneha Reddy", Date: "2025-11-07", DoctorName: "Dr. David Lee", Status: StatusCancelled},
	}
}

func ids(appts []Appointment) []string {
	out := make([]string, 0, len(appts))
	for _, a := range appts {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "zero filter matches all in order",
			filter:  Filter{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "date only",
			filter:  Filter{Date: "2025-11-06"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "status only",
			filter:  Filter{Status: StatusCancelled},
			wantIDs: []string{"4"},
		},
		{
			name:    "doctor exact match",
			filter:  Filter{Doctor: "Dr. Sarah Johnson"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "search hits patient name case-insensitively",
			filter:  Filter{Search: "RAJESH"},
			wantIDs: []string{"1"},
		},
		{
			name:    "search hits doctor name case-insensitively",
			filter:  Filter{Search: "sarah"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "filters compose conjunctively",
			filter:  Filter{Date: "2025-11-06", Status: StatusUpcoming, Search: "sarah"},
			wantIDs: []string{"1"},
		},
		{
			name:    "no match",
			filter:  Filter{Doctor: "Dr. Nobody"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filterFixture()
			got := tt.filter.Apply(in)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids(got), tt.wantIDs)
			}
			if !reflect.DeepEqual(in, filterFixture()) {
				t.Fatalf("input collection was mutated")
			}
		})
	}
}

func TestFilterApply_ResultIsIndependentSlice(t *testing.T) {
	in := filterFixture()
	got := Filter{Date: "2025-11-06"}.Apply(in)

	got[0].PatientName = "changed"
	if in[0].PatientName != "Rajesh Kumar" {
		t.Fatalf("mutating the result leaked into the input: %q", in[0].PatientName)
	}
}
