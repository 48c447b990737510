package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var jsonNull = []byte("null")

// Flag is an upstream boolean that may arrive as 0/1, true/false or null.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, jsonNull):
		*f = false
		return nil
	case bytes.Equal(b, []byte("true")):
		*f = true
		return nil
	case bytes.Equal(b, []byte("false")):
		*f = false
		return nil
	}
	raw := string(bytes.Trim(b, `"`))
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("flag: invalid value %s", b)
	}
	*f = n != 0
	return nil
}

// MarshalJSON encodes the flag as a JSON boolean.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Code is an identifier that may arrive as a JSON string or number.
type Code string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Code) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("code: invalid value %s", b)
	}
	*c = Code(n.String())
	return nil
}

// String returns the identifier text.
func (c Code) String() string { return string(c) }
