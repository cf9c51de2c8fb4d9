package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stockfolio"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the full transaction ledger of a portfolio,
// one section per traded symbol, transactions in the order they were
// recorded.
func TransactionsMarkdown(p *stockfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions of %s", p.Name()))

	ledger := p.Ledger()
	empty := true
	for symbol := range ledger.Symbols() {
		empty = false
		doc.H2(symbol)

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Type", "Shares", "Date"},
			Rows:   [][]string{},
		}
		for tx := range ledger.Transactions(symbol) {
			table.Rows = append(table.Rows, []string{
				string(tx.Type),
				tx.Shares.String(),
				tx.Date.String(),
			})
		}
		doc.Table(table)
	}
	if empty {
		doc.PlainText("No transactions.")
	}

	return doc.String()
}
