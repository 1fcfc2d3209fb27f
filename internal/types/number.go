package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric strings when decoding.
// Generated itineraries are not always strict about JSON number types.
// Null and non-numeric strings decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 { return float64(n) }

// NumberPtr is a helper for optional numeric fields.
func NumberPtr(f float64) *Number {
	n := Number(f)
	return &n
}
