package stockfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// SymbolList is the ticker reference list, loaded from a CSV file whose
// first column holds the symbols. Matching is case-insensitive.
type SymbolList struct {
	symbols map[string]struct{}
}

// LoadSymbolList reads the reference CSV at path.
func LoadSymbolList(path string) (*SymbolList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening symbol list: %w", err)
	}
	defer f.Close()
	return ReadSymbolList(f)
}

// ReadSymbolList parses the reference list from a reader.
func ReadSymbolList(r io.Reader) (*SymbolList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may carry extra columns, only the first matters

	list := &SymbolList{symbols: make(map[string]struct{})}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading symbol list: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(record[0]))
		if symbol != "" {
			list.symbols[symbol] = struct{}{}
		}
	}
	return list, nil
}

// IsValidSymbol reports whether the symbol appears in the reference list.
func (l *SymbolList) IsValidSymbol(symbol string) bool {
	_, ok := l.symbols[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}

// Len returns the number of known symbols.
func (l *SymbolList) Len() int { return len(l.symbols) }
