// Package renewal infers billing cadence from transaction date series and
// projects the next renewal date.
package renewal

import (
	"math"
	"sort"
	"time"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/internal/common"
)

// Info is the derived renewal picture for one vendor's transaction history.
type Info struct {
	Frequency        constants.Frequency `json:"frequency"`
	RenewalDate      time.Time           `json:"renewal_date"`
	DaysUntilRenewal int                 `json:"days_until_renewal"`
	IsUrgent         bool                `json:"is_urgent"`
}

// Gap thresholds (days) for the mean-interval classifier.
const (
	monthlyMaxGap   = 45
	quarterlyMaxGap = 120
	annualMaxGap    = 400
)

// annualLeadMonths is the intentional negotiation lead window: annual renewals
// are projected 11 months after the first transaction, not 12, so the renewal
// surfaces before the true anniversary.
const annualLeadMonths = 11

// DetectFrequency classifies billing cadence from a date series. Fewer than
// two dates default to monthly (the SaaS prior). Otherwise the mean
// inter-transaction gap is bucketed by single thresholds. Known limitation:
// the mean has no outlier rejection, so one irregular gap can shift the
// bucket.
func DetectFrequency(dates []time.Time) constants.Frequency {
	if len(dates) < 2 {
		return constants.FrequencyMonthly
	}

	sorted := sortedCopy(dates)
	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += sorted[i].Sub(sorted[i-1]).Hours() / 24
	}
	meanGap := totalDays / float64(len(sorted)-1)

	switch {
	case meanGap <= monthlyMaxGap:
		return constants.FrequencyMonthly
	case meanGap <= quarterlyMaxGap:
		return constants.FrequencyQuarterly
	case meanGap <= annualMaxGap:
		return constants.FrequencyAnnual
	default:
		return constants.FrequencyOneTime
	}
}

// CalculateRenewalDate projects the next renewal from the last transaction.
// See CalculateRenewalDateAt for the semantics; "now" is the wall clock.
func CalculateRenewalDate(last time.Time, freq constants.Frequency, first time.Time) time.Time {
	return CalculateRenewalDateAt(time.Now(), last, freq, first)
}

// CalculateRenewalDateAt projects the next renewal as of an explicit "now".
// Monthly/quarterly step forward in whole 1/3-month increments from the last
// transaction until the result is not in the past (handles stale data).
// Annual anchors 11 months after the first transaction (negotiation lead
// window) and rolls forward by whole years; with no first date it anchors on
// the last transaction. One-time is the last transaction itself.
func CalculateRenewalDateAt(now, last time.Time, freq constants.Frequency, first time.Time) time.Time {
	switch freq {
	case constants.FrequencyMonthly, constants.FrequencyQuarterly:
		step := 1
		if freq == constants.FrequencyQuarterly {
			step = 3
		}
		candidate := last.AddDate(0, step, 0)
		for candidate.Before(now) {
			candidate = candidate.AddDate(0, step, 0)
		}
		return candidate

	case constants.FrequencyAnnual:
		anchor := first
		if anchor.IsZero() {
			anchor = last
		}
		candidate := anchor.AddDate(0, annualLeadMonths, 0)
		for candidate.Before(now) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate

	default: // one-time: no projection
		return last
	}
}

// GetRenewalInfo derives the full renewal picture from a date series. Pass an
// empty frequency to auto-detect. Fails with common.ErrNoTransactions on an
// empty series.
func GetRenewalInfo(dates []time.Time, freq constants.Frequency) (Info, error) {
	return GetRenewalInfoAt(time.Now(), dates, freq)
}

// GetRenewalInfoAt is GetRenewalInfo as of an explicit "now".
func GetRenewalInfoAt(now time.Time, dates []time.Time, freq constants.Frequency) (Info, error) {
	if len(dates) == 0 {
		return Info{}, common.ErrNoTransactions
	}
	if freq == "" {
		freq = DetectFrequency(dates)
	}

	sorted := sortedCopy(dates)
	first, last := sorted[0], sorted[len(sorted)-1]
	renewalDate := CalculateRenewalDateAt(now, last, freq, first)

	days := DaysUntil(now, renewalDate)
	return Info{
		Frequency:        freq,
		RenewalDate:      renewalDate,
		DaysUntilRenewal: days,
		IsUrgent:         days > 0 && days <= 30,
	}, nil
}

// DaysUntil counts days from now to d, rounding partial days up: a renewal
// twelve hours out is 1 day away, not 0. Every urgency consumer must go
// through this so the tier boundaries stay aligned.
func DaysUntil(now, d time.Time) int {
	return int(math.Ceil(d.Sub(now).Hours() / 24))
}

// UrgencyLabel buckets days-until-renewal into the UI tiers. Boundaries are
// inclusive at the upper edge of each tier.
func UrgencyLabel(daysUntilRenewal int) (label, color string) {
	switch {
	case daysUntilRenewal <= 0:
		return "Overdue", "gray"
	case daysUntilRenewal <= 7:
		return "Urgent", "red"
	case daysUntilRenewal <= 14:
		return "Due soon", "orange"
	case daysUntilRenewal <= 30:
		return "Upcoming", "yellow"
	case daysUntilRenewal <= 90:
		return "Scheduled", "green"
	default:
		return "Distant", "gray"
	}
}

func sortedCopy(dates []time.Time) []time.Time {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted
}
