package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
	md "github.com/nao1215/markdown"
)

// ChartMarkdown renders a sampled value series as a horizontal bar chart,
// one row of asterisks per sample, inside a code block so the bars keep
// their alignment through the terminal markdown renderer.
func ChartMarkdown(s stockfolio.ChartSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance of %s", s.Portfolio))
	doc.PlainText(fmt.Sprintf("From %s to %s, one row per %s.", s.Range.From, s.Range.To, s.Granularity))
	doc.CodeBlocks(md.SyntaxHighlightText, ChartText(s))

	return doc.String()
}

// ChartText is the raw text chart: aligned date labels, asterisk bars, and
// the scale legend on the last line.
func ChartText(s stockfolio.ChartSeries) string {
	labels := make([]string, len(s.Points))
	var width int
	for i, pt := range s.Points {
		labels[i] = s.Granularity.Label(pt.Date)
		if len(labels[i]) > width {
			width = len(labels[i])
		}
	}

	var sb strings.Builder
	for i, pt := range s.Points {
		fmt.Fprintf(&sb, "%-*s: %s\n", width, labels[i], strings.Repeat("*", s.Bars(pt)))
	}
	fmt.Fprintf(&sb, "Scale: * = %.2f %s\n", s.Scale, stockfolio.ReportingCurrency)
	return sb.String()
}
