package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestDatesInRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    []string
		wantErr bool
	}{
		{
			name:  "single day",
			start: "2024-01-01",
			end:   "2024-01-01",
			want:  []string{"2024-01-01"},
		},
		{
			name:  "across leap day",
			start: "2024-02-28",
			end:   "2024-03-01",
			want:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:  "across year end",
			start: "2023-12-30",
			end:   "2024-01-02",
			want:  []string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"},
		},
		{
			name:  "end before start",
			start: "2024-01-05",
			end:   "2024-01-01",
			want:  nil,
		},
		{
			name:    "invalid start",
			start:   "2024-1-5",
			end:     "2024-01-06",
			wantErr: true,
		},
		{
			name:    "invalid end",
			start:   "2024-01-05",
			end:     "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatesInRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DatesInRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DatesInRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-07", "2024-01-01"}, // Sunday
		{"2024-03-01", "2024-02-26"}, // Friday, previous month
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := WeekStart(tt.date)
			if err != nil {
				t.Fatalf("WeekStart() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}

	if _, err := WeekStart("garbage"); err == nil {
		t.Error("WeekStart() should fail for an invalid date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-12-31", 1)
	if err != nil {
		t.Fatalf("AddDays() error = %v", err)
	}
	if got != "2025-01-01" {
		t.Errorf("AddDays() = %s, want 2025-01-01", got)
	}

	got, err = AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatalf("AddDays() error = %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays() = %s, want 2024-02-29", got)
	}
}

func TestDaysBetweenSameMonth(t *testing.T) {
	a, _ := ParseDate("2024-03-01")
	b, _ := ParseDate("2024-03-31")
	if got := DaysBetween(a, b); got != 30 {
		t.Errorf("DaysBetween() = %d, want 30", got)
	}
	if got := DaysBetween(b, a); got != -30 {
		t.Errorf("DaysBetween() = %d, want -30", got)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, %v; want time.Local", loc, err)
	}
	loc, err = LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"Local\") = %v, %v; want time.Local", loc, err)
	}
	if _, err := LoadLocation("UTC"); err != nil {
		t.Errorf("LoadLocation(\"UTC\") error = %v", err)
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("ValidateTimezone() = true for an invalid zone")
	}
}
