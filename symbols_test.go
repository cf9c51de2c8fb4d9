package stockfolio

import (
	"strings"
	"testing"
)

func TestReadSymbolList(t *testing.T) {
	// Nasdaq-style listing: symbol first, descriptive columns after, with
	// a ragged row and mixed case thrown in.
	in := strings.Join([]string{
		"AAPL,Apple Inc. Common Stock,NASDAQ",
		"msft,Microsoft Corporation",
		"GOOG",
		" brk.b ,Berkshire Hathaway",
	}, "\n")

	list, err := ReadSymbolList(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadSymbolList: %v", err)
	}
	if got := list.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}

	testCases := []struct {
		symbol string
		want   bool
	}{
		{"AAPL", true},
		{"aapl", true}, // matching ignores case
		{"MSFT", true},
		{"BRK.B", true},
		{" goog ", true}, // and surrounding spaces
		{"TSLA", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := list.IsValidSymbol(tc.symbol); got != tc.want {
			t.Errorf("IsValidSymbol(%q) = %v, want %v", tc.symbol, got, tc.want)
		}
	}
}

func TestReadSymbolList_Empty(t *testing.T) {
	list, err := ReadSymbolList(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadSymbolList: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("Len = %d, want 0", list.Len())
	}
	if list.IsValidSymbol("AAPL") {
		t.Error("empty list accepted a symbol")
	}
}
