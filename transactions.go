package stockfolio

import "fmt"

// TxType is the kind of a ledger entry.
type TxType string

const (
	TxBuy  TxType = "BUY"
	TxSell TxType = "SELL"
)

// ParseTxType parses the persisted form of a transaction type.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "BUY":
		return TxBuy, nil
	case "SELL":
		return TxSell, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one immutable ledger entry: a signed share-quantity event.
// Shares is always the positive magnitude; the sign comes from the type.
type Transaction struct {
	Security string
	Shares   Quantity
	Date     Date
	Type     TxType
}

// Delta returns the signed share delta: +Shares for a buy, -Shares for a sell.
func (t Transaction) Delta() Quantity {
	if t.Type == TxSell {
		return Quantity{}.Sub(t.Shares)
	}
	return t.Shares
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s,%s,%s", t.Type, t.Shares, t.Date)
}
