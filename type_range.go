package stockfolio

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range, boundaries included.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the inclusive number of days the range spans.
func (r Range) Days() int { return r.From.DaysUntil(r.To) + 1 }

// Dates returns an iterator that yields dates sampled at the given
// granularity: the first date is From, each next date is one granularity
// step later, and iteration stops once past To.
func (r Range) Dates(g Granularity) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = g.Next(d) {
			if !yield(d) {
				return
			}
		}
	}
}
