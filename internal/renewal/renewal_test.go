package renewal

import (
	"errors"
	"testing"
	"time"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/internal/common"
)

func ymd(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func series(start string, gapDays, n int) []time.Time {
	out := make([]time.Time, n)
	cur := ymd(start)
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = cur.AddDate(0, 0, gapDays)
	}
	return out
}

func TestDetectFrequency(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  constants.Frequency
	}{
		{"empty defaults to monthly", nil, constants.FrequencyMonthly},
		{"single date defaults to monthly", series("2024-01-15", 30, 1), constants.FrequencyMonthly},
		{"30 day gaps", series("2024-01-15", 30, 4), constants.FrequencyMonthly},
		{"45 day gaps stay monthly", series("2024-01-15", 45, 3), constants.FrequencyMonthly},
		{"100 day gaps", series("2024-01-01", 100, 3), constants.FrequencyQuarterly},
		{"200 day gaps", series("2023-01-01", 200, 3), constants.FrequencyAnnual},
		{"500 day gaps", series("2022-01-01", 500, 3), constants.FrequencyOneTime},
		{"unsorted input", []time.Time{ymd("2024-03-15"), ymd("2024-01-15"), ymd("2024-02-14")}, constants.FrequencyMonthly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFrequency(tt.dates); got != tt.want {
				t.Errorf("DetectFrequency() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateRenewalDateAt(t *testing.T) {
	now := ymd("2024-06-01")
	tests := []struct {
		name  string
		last  string
		freq  constants.Frequency
		first string
		want  string
	}{
		{"monthly steps one month", "2024-05-10", constants.FrequencyMonthly, "2024-01-10", "2024-06-10"},
		{"monthly rolls past stale data", "2024-01-10", constants.FrequencyMonthly, "2024-01-10", "2024-06-10"},
		{"quarterly steps three months", "2024-04-20", constants.FrequencyQuarterly, "2024-01-20", "2024-07-20"},
		{"annual anchors eleven months after first", "2024-03-15", constants.FrequencyAnnual, "2024-01-15", "2024-12-15"},
		{"annual without first anchors on last", "2024-01-15", constants.FrequencyAnnual, "", "2024-12-15"},
		{"one-time is the last transaction", "2024-02-01", constants.FrequencyOneTime, "2024-02-01", "2024-02-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var first time.Time
			if tt.first != "" {
				first = ymd(tt.first)
			}
			got := CalculateRenewalDateAt(now, ymd(tt.last), tt.freq, first)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("CalculateRenewalDateAt() = %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}

	// the 11-month anchor rolls forward whole years once it is in the past
	got := CalculateRenewalDateAt(ymd("2025-01-20"), ymd("2024-03-15"), constants.FrequencyAnnual, ymd("2024-01-15"))
	if got.Format("2006-01-02") != "2025-12-15" {
		t.Errorf("annual roll-forward = %s, want 2025-12-15", got.Format("2006-01-02"))
	}
}

func TestGetRenewalInfoAt(t *testing.T) {
	now := ymd("2024-06-01")

	t.Run("empty series fails", func(t *testing.T) {
		_, err := GetRenewalInfoAt(now, nil, "")
		if !errors.Is(err, common.ErrNoTransactions) {
			t.Errorf("err = %v, want ErrNoTransactions", err)
		}
	})

	t.Run("auto-detects and projects", func(t *testing.T) {
		info, err := GetRenewalInfoAt(now, series("2024-02-10", 30, 4), "")
		if err != nil {
			t.Fatal(err)
		}
		if info.Frequency != constants.FrequencyMonthly {
			t.Errorf("frequency = %s, want monthly", info.Frequency)
		}
		// last tx 2024-05-10, so next renewal 2024-06-10: nine days out
		if got := info.RenewalDate.Format("2006-01-02"); got != "2024-06-10" {
			t.Errorf("renewal date = %s, want 2024-06-10", got)
		}
		if info.DaysUntilRenewal != 9 {
			t.Errorf("days = %d, want 9", info.DaysUntilRenewal)
		}
		if !info.IsUrgent {
			t.Error("nine days out should be urgent")
		}
	})

	t.Run("explicit frequency overrides detection", func(t *testing.T) {
		info, err := GetRenewalInfoAt(now, series("2024-02-10", 30, 4), constants.FrequencyOneTime)
		if err != nil {
			t.Fatal(err)
		}
		if info.Frequency != constants.FrequencyOneTime {
			t.Errorf("frequency = %s, want one-time", info.Frequency)
		}
		if info.IsUrgent {
			t.Error("a past one-time charge is never urgent")
		}
	})
}

func TestUrgencyLabel(t *testing.T) {
	tests := []struct {
		days      int
		wantLabel string
		wantColor string
	}{
		{-3, "Overdue", "gray"},
		{0, "Overdue", "gray"},
		{1, "Urgent", "red"},
		{7, "Urgent", "red"},
		{8, "Due soon", "orange"},
		{14, "Due soon", "orange"},
		{15, "Upcoming", "yellow"},
		{30, "Upcoming", "yellow"},
		{31, "Scheduled", "green"},
		{90, "Scheduled", "green"},
		{91, "Distant", "gray"},
	}
	for _, tt := range tests {
		label, color := UrgencyLabel(tt.days)
		if label != tt.wantLabel || color != tt.wantColor {
			t.Errorf("UrgencyLabel(%d) = %s/%s, want %s/%s", tt.days, label, color, tt.wantLabel, tt.wantColor)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"same instant", now, 0},
		{"twelve hours out rounds up", now.Add(12 * time.Hour), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"a day and a half", now.Add(36 * time.Hour), 2},
		{"twelve hours past", now.Add(-12 * time.Hour), 0},
		{"a week out", now.Add(7 * 24 * time.Hour), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(now, tt.at); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}

	// a renewal later today must read as urgent, not overdue
	label, color := UrgencyLabel(DaysUntil(now, now.Add(12*time.Hour)))
	if label != "Urgent" || color != "red" {
		t.Errorf("renewal in 12h = %s/%s, want Urgent/red", label, color)
	}
}
