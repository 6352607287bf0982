package beneficiary

import (
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

func TestParseTracking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 20, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		form    trackingForm
		wantKey string
		check   func(t *testing.T, entry mockdata.WeeklyTracking)
	}{
		{
			name: "blank amounts are zero and week defaults to today",
			form: trackingForm{},
			check: func(t *testing.T, entry mockdata.WeeklyTracking) {
				if !entry.Income.IsZero() || !entry.Expenses.IsZero() || !entry.CurrentCapital.IsZero() {
					t.Fatalf("amounts = %v/%v/%v, want zero", entry.Income, entry.Expenses, entry.CurrentCapital)
				}
				if want := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC); !entry.WeekEnding.Equal(want) {
					t.Fatalf("WeekEnding = %v, want %v", entry.WeekEnding, want)
				}
				if entry.Attendance != mockdata.AttendancePresent {
					t.Fatalf("Attendance = %q, want %q", entry.Attendance, mockdata.AttendancePresent)
				}
			},
		},
		{name: "negative expenses", form: trackingForm{Expenses: "-1"}, wantKey: "error.tracking.amounts"},
		{name: "non numeric savings", form: trackingForm{Savings: "lots"}, wantKey: "error.tracking.amounts"},
		{name: "bad date", form: trackingForm{WeekEnding: "14/06/2024"}, wantKey: "error.tracking.week"},
		{
			name: "unknown enums are dropped",
			form: trackingForm{Attendance: "sleeping", TaskStatus: "maybe", Income: "12.5"},
			check: func(t *testing.T, entry mockdata.WeeklyTracking) {
				if entry.Attendance != mockdata.AttendancePresent || entry.TaskStatus != "" {
					t.Fatalf("enums = %q/%q, want present/empty", entry.Attendance, entry.TaskStatus)
				}
				if got := entry.Income.String(); got != "12.5" {
					t.Fatalf("Income = %s, want 12.5", got)
				}
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entry, key := parseTracking(tc.form, "beneficiary-1", now)
			if key != tc.wantKey {
				t.Fatalf("key = %q, want %q", key, tc.wantKey)
			}
			if tc.check != nil {
				tc.check(t, entry)
			}
		})
	}
}

func TestAttendanceRate(t *testing.T) {
	t.Parallel()

	entries := []mockdata.WeeklyTracking{
		{Attendance: mockdata.AttendancePresent},
		{Attendance: mockdata.AttendanceLate},
		{Attendance: mockdata.AttendanceAbsent},
		{Attendance: mockdata.AttendancePresent},
	}
	if got := attendanceRate(entries); got != 75 {
		t.Fatalf("attendanceRate = %d, want 75", got)
	}
	if got := attendanceRate(nil); got != 0 {
		t.Fatalf("attendanceRate(nil) = %d, want 0", got)
	}
}
