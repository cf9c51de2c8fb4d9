package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/stockfolio"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the composition of a portfolio on a date: one row
// per held symbol with its share count.
func HoldingMarkdown(name string, day stockfolio.Date, composition map[string]stockfolio.Quantity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Composition of %s on %s", name, day))
	if len(composition) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Shares"},
		Rows:   [][]string{},
	}
	for _, symbol := range sortedKeys(composition) {
		table.Rows = append(table.Rows, []string{symbol, composition[symbol].String()})
	}
	doc.Table(table)

	return doc.String()
}

// DistributionMarkdown renders the market value of each holding on a date,
// with its weight in the total. Symbols without a price on the date show a
// zero value.
func DistributionMarkdown(name string, day stockfolio.Date, distribution map[string]stockfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Distribution of %s on %s", name, day))
	if len(distribution) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	var total stockfolio.Money
	for _, value := range distribution {
		total = total.Add(value)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Value", "Weight"},
		Rows:   [][]string{},
	}
	for _, symbol := range sortedKeys(distribution) {
		table.Rows = append(table.Rows, []string{
			symbol,
			distribution[symbol].String(),
			weightOf(distribution[symbol], total),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", total))

	return doc.String()
}

// weightOf formats value/total as a percentage, blank when the total is zero.
func weightOf(value, total stockfolio.Money) string {
	if total.IsZero() {
		return ""
	}
	return fmt.Sprintf("%.1f%%", 100*value.InexactFloat64()/total.InexactFloat64())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
