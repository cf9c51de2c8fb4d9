package stockfolio

// The performance chart samples portfolio value over a range at the
// granularity chosen by GranularityOf and renders one row of asterisks per
// sample. The series computation lives here; the text layout is in
// renderer.

// maxBars is the widest row a chart may print.
const maxBars = 50

// ChartPoint is one sampled row of the performance chart.
type ChartPoint struct {
	Date  Date
	Value Money
}

// ChartSeries holds everything the renderer needs for one chart.
type ChartSeries struct {
	Portfolio   string
	Range       Range
	Granularity Granularity
	Points      []ChartPoint
	Scale       float64
}

// BuildChartSeries samples the portfolio value over the range. Dates with a
// zero value (typically non-trading days at coarse granularities) carry
// forward the last known value so the chart doesn't collapse to nothing on
// holidays.
func BuildChartSeries(p *Portfolio, market *Market, r Range) ChartSeries {
	g := GranularityOf(r)

	var points []ChartPoint
	var lastKnown Money
	var maxValue float64
	for day := range r.Dates(g) {
		value := p.ValueAsOf(day, market)
		if !value.IsZero() {
			lastKnown = value
		} else {
			value = lastKnown
		}
		if v := value.InexactFloat64(); v > maxValue {
			maxValue = v
		}
		points = append(points, ChartPoint{Date: day, Value: value})
	}

	return ChartSeries{
		Portfolio:   p.Name(),
		Range:       r,
		Granularity: g,
		Points:      points,
		Scale:       chartScale(maxValue),
	}
}

// chartScale picks the per-asterisk value: the smallest of the round scales
// 500, 1000, 2000 that keeps every row within maxBars, else exactly
// max/maxBars.
func chartScale(maxValue float64) float64 {
	for _, scale := range []float64{500, 1000, 2000} {
		if int(maxValue)/int(scale) <= maxBars {
			return scale
		}
	}
	return maxValue / maxBars
}

// Bars returns the asterisk count for one point at the series scale. A
// non-positive value renders as an empty row: the count is clamped at zero
// because negative prices are accepted by the data model.
func (s ChartSeries) Bars(pt ChartPoint) int {
	if s.Scale == 0 {
		return 0
	}
	if n := int(pt.Value.InexactFloat64() / s.Scale); n > 0 {
		return n
	}
	return 0
}
