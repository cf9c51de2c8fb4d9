package stockfolio

import (
	"fmt"
	"strings"
)

// Granularity is the sampling step chosen for a date range, used by the
// chart renderer to pick both the step and the date-label format.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
	BiYearly
	Yearly
)

// Span thresholds, in inclusive days, above which the next coarser
// granularity applies: a week of months (30*7), a month of months (30*30),
// and half a year of months (30*6*30).
const (
	weeklyThreshold   = 30
	monthlyThreshold  = 30 * 7
	biYearlyThreshold = 30 * 30
	yearlyThreshold   = 30 * 6 * 30
)

// GranularityOf classifies a date range into the granularity bucket used
// for charting, by its inclusive day count.
func GranularityOf(r Range) Granularity {
	days := r.Days()
	switch {
	case days >= yearlyThreshold:
		return Yearly
	case days >= biYearlyThreshold:
		return BiYearly
	case days >= monthlyThreshold:
		return Monthly
	case days >= weeklyThreshold:
		return Weekly
	default:
		return Daily
	}
}

// Next returns the date one granularity step after d.
func (g Granularity) Next(d Date) Date {
	switch g {
	case Daily:
		return d.Add(1)
	case Weekly:
		return d.Add(7)
	case Monthly:
		return d.AddMonths(1)
	case BiYearly:
		return d.AddMonths(6)
	case Yearly:
		return d.AddYears(1)
	default:
		panic("unknown granularity")
	}
}

// Label formats a date for the chart axis at this granularity.
func (g Granularity) Label(d Date) string {
	switch g {
	case Daily, Weekly:
		return d.Format("02 Jan 2006")
	case Monthly, BiYearly:
		return d.Format("Jan 2006")
	case Yearly:
		return d.Format("2006")
	default:
		return d.String()
	}
}

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case BiYearly:
		return "bi-year"
	case Yearly:
		return "year"
	default:
		return "granularity"
	}
}

// ParseGranularity parses a granularity name as printed by String.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return Daily, nil
	case "week", "weekly":
		return Weekly, nil
	case "month", "monthly":
		return Monthly, nil
	case "bi-year", "biyear", "bi-yearly":
		return BiYearly, nil
	case "year", "yearly":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown granularity %q", s)
	}
}
