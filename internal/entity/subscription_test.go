package entity

import (
	"testing"

	"github.com/subtally/subtally/constants"
)

func TestMonthlyPerSeat(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }

	tests := []struct {
		name   string
		sub    Subscription
		want   float64
		wantOK bool
	}{
		{"no amount", Subscription{Seats: n(5)}, 0, false},
		{"monthly single seat", Subscription{Amount: f(12), BillingCycle: constants.BillingMonthly}, 12, true},
		{"monthly per seat", Subscription{Amount: f(96), Seats: n(12), BillingCycle: constants.BillingMonthly}, 8, true},
		{"yearly divided by 12 first", Subscription{Amount: f(144), Seats: n(3), BillingCycle: constants.BillingYearly}, 4, true},
		{"missing seats means one", Subscription{Amount: f(144), BillingCycle: constants.BillingYearly}, 12, true},
		{"zero seats means one", Subscription{Amount: f(10), Seats: n(0)}, 10, true},
		{"unknown cycle taken as monthly", Subscription{Amount: f(30), Seats: n(3)}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.sub.MonthlyPerSeat()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MonthlyPerSeat() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMonthlyPerSeatMonotonicInAmount(t *testing.T) {
	seats := 4
	prev := -1.0
	for _, amount := range []float64{1, 12, 120, 1200} {
		a := amount
		sub := Subscription{Amount: &a, Seats: &seats, BillingCycle: constants.BillingYearly}
		got, ok := sub.MonthlyPerSeat()
		if !ok {
			t.Fatal("expected a value")
		}
		if got <= prev {
			t.Errorf("per-seat figure must grow with amount: %v then %v", prev, got)
		}
		prev = got
	}
}
