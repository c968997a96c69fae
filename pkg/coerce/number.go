package coerce

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Number decodes a JSON number or numeric string. An empty string and null are zero,
// which is what HTML forms send for a blank field.
type Number struct {
	decimal.Decimal
}

func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || isBlankString(trimmed) {
		n.Decimal = decimal.Zero
		return nil
	}
	return n.Decimal.UnmarshalJSON(trimmed)
}

func isBlankString(data []byte) bool {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return false
	}
	return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
}
