package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The persisted portfolio format is plain text, line oriented:
//
//	Portfolio Name: <name>
//	Number of Stocks: <N>
//	Stock: <symbol>
//	Transactions: <M>
//	<BUY|SELL>,<shares>,<ISO-date>
//
// with one Stock block per traded symbol. Symbols are written in sorted
// order; transactions keep their insertion order so the file round-trips
// the ledger exactly.

const (
	namePrefix   = "Portfolio Name: "
	stocksPrefix = "Number of Stocks: "
	stockPrefix  = "Stock: "
	txPrefix     = "Transactions: "
)

// EncodePortfolio writes a portfolio in the persisted text format.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	bw := bufio.NewWriter(w)
	ledger := p.Ledger()

	var symbols []string
	for symbol := range ledger.Symbols() {
		symbols = append(symbols, symbol)
	}

	fmt.Fprintf(bw, "%s%s\n", namePrefix, p.Name())
	fmt.Fprintf(bw, "%s%d\n", stocksPrefix, len(symbols))
	for _, symbol := range symbols {
		fmt.Fprintf(bw, "%s%s\n", stockPrefix, symbol)
		fmt.Fprintf(bw, "%s%d\n", txPrefix, ledger.Len(symbol))
		for tx := range ledger.Transactions(symbol) {
			fmt.Fprintf(bw, "%s,%s,%s\n", tx.Type, tx.Shares, tx.Date)
		}
	}
	return bw.Flush()
}

// DecodePortfolio reads a portfolio from the persisted text format. The
// portfolio's name is the one declared in the file: callers reconcile
// naming before registering the result. Any structural deviation fails with
// ErrMalformedFile and nothing is returned.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	sc := bufio.NewScanner(r)

	name, err := readPrefixed(sc, namePrefix)
	if err != nil {
		return nil, err
	}
	stockCount, err := readCount(sc, stocksPrefix)
	if err != nil {
		return nil, err
	}

	p := NewPortfolio(name)
	for i := 0; i < stockCount; i++ {
		symbol, err := readPrefixed(sc, stockPrefix)
		if err != nil {
			return nil, err
		}
		txCount, err := readCount(sc, txPrefix)
		if err != nil {
			return nil, err
		}
		for j := 0; j < txCount; j++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: missing transaction line %d for %s", ErrMalformedFile, j+1, symbol)
			}
			tx, err := parseTransactionLine(symbol, sc.Text())
			if err != nil {
				return nil, err
			}
			if tx.Type == TxBuy {
				p.ledger.RecordBuy(symbol, tx.Shares, tx.Date)
			} else {
				p.ledger.RecordSell(symbol, tx.Shares, tx.Date)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading portfolio: %w", err)
	}
	return p, nil
}

// readPrefixed reads the next line and strips the expected prefix.
func readPrefixed(sc *bufio.Scanner, prefix string) (string, error) {
	if !sc.Scan() {
		return "", fmt.Errorf("%w: missing %q line", ErrMalformedFile, strings.TrimSpace(prefix))
	}
	line := sc.Text()
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("%w: want %q line, got %q", ErrMalformedFile, strings.TrimSpace(prefix), line)
	}
	return line[len(prefix):], nil
}

// readCount reads the next line as a prefixed non-negative integer.
func readCount(sc *bufio.Scanner, prefix string) (int, error) {
	text, err := readPrefixed(sc, prefix)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid count %q", ErrMalformedFile, text)
	}
	return n, nil
}

// parseTransactionLine parses one "<BUY|SELL>,<shares>,<ISO-date>" line.
func parseTransactionLine(symbol, line string) (Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Transaction{}, fmt.Errorf("%w: want 3 fields, got %q", ErrMalformedFile, line)
	}
	txType, err := ParseTxType(parts[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	shares, err := ParseQuantity(parts[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid shares %q", ErrMalformedFile, parts[1])
	}
	day, err := ParseDate(parts[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid date %q", ErrMalformedFile, parts[2])
	}
	return Transaction{Security: symbol, Shares: shares, Date: day, Type: txType}, nil
}
