// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Quantity is a nullable rational ingredient amount. The zero value is null.
// Quantity values are immutable: arithmetic returns a new Quantity.
type Quantity struct {
	r *big.Rat
}

// NullQuantity returns the null quantity.
func NullQuantity() Quantity { return Quantity{} }

// NewQuantity returns num/den. It panics if den is zero.
func NewQuantity(num, den int64) Quantity {
	return Quantity{r: big.NewRat(num, den)}
}

// QuantityFromFloat converts f exactly through its shortest decimal form,
// so 0.1 becomes 1/10 rather than the nearest binary fraction.
func QuantityFromFloat(f float64) (Quantity, error) {
	return ParseQuantity(strconv.FormatFloat(f, 'g', -1, 64))
}

// ParseQuantity parses a decimal ("0.5", "1e-3") or fraction ("1/3") string.
// The empty string parses to zero.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewQuantity(0, 1), nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Quantity{}, fmt.Errorf("invalid quantity %q", s)
	}
	return Quantity{r: r}, nil
}

// IsNull reports whether the quantity is absent.
func (q Quantity) IsNull() bool { return q.r == nil }

// IsZero reports whether the quantity is null or equal to zero.
func (q Quantity) IsZero() bool { return q.r == nil || q.r.Sign() == 0 }

// Rat returns a copy of the underlying rational, or nil when null.
func (q Quantity) Rat() *big.Rat {
	if q.r == nil {
		return nil
	}
	return new(big.Rat).Set(q.r)
}

// Float64 returns the nearest float64 and false when null.
func (q Quantity) Float64() (float64, bool) {
	if q.r == nil {
		return 0, false
	}
	f, _ := q.r.Float64()
	return f, true
}

// Scale returns q * num / den. Null stays null.
func (q Quantity) Scale(num, den int64) Quantity {
	if q.r == nil {
		return q
	}
	out := new(big.Rat).Mul(q.r, big.NewRat(num, den))
	return Quantity{r: out}
}

// Equal reports whether both quantities are null or numerically equal.
func (q Quantity) Equal(o Quantity) bool {
	if q.r == nil || o.r == nil {
		return q.r == nil && o.r == nil
	}
	return q.r.Cmp(o.r) == 0
}

// String returns "null", an integer, or "n/d".
func (q Quantity) String() string {
	if q.r == nil {
		return "null"
	}
	return q.r.RatString()
}

// literal returns the JSON/YAML literal: a decimal when the value has a
// finite decimal expansion, or a quoted "n/d" fraction otherwise.
func (q Quantity) literal() (string, bool) {
	digits, ok := decimalDigits(q.r.Denom())
	if !ok {
		return q.r.RatString(), false
	}
	s := q.r.FloatString(digits)
	if digits > 0 {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s, true
}

// decimalDigits returns the number of fractional digits needed to write
// 1/den exactly in base 10, and false when den has a prime factor other
// than 2 or 5.
func decimalDigits(den *big.Int) (int, bool) {
	d := new(big.Int).Set(den)
	two, five := big.NewInt(2), big.NewInt(5)
	var twos, fives int
	mod := new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(d, two, mod)
		if m.Sign() != 0 {
			break
		}
		d = q
		twos++
	}
	for {
		q, m := new(big.Int).QuoRem(d, five, mod)
		if m.Sign() != 0 {
			break
		}
		d = q
		fives++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}

// MarshalJSON encodes null, a JSON number, or a "n/d" string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.r == nil {
		return []byte("null"), nil
	}
	s, isNumber := q.literal()
	if isNumber {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// UnmarshalJSON accepts null, a JSON number, or a numeric string.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	parsed, err := ParseQuantity(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalYAML encodes the quantity the same way as MarshalJSON.
func (q Quantity) MarshalYAML() (any, error) {
	if q.r == nil {
		return nil, nil
	}
	s, isNumber := q.literal()
	if isNumber {
		f, _ := q.r.Float64()
		if q.r.IsInt() {
			return q.r.Num().Int64(), nil
		}
		return f, nil
	}
	return s, nil
}

// UnmarshalYAML decodes a number, a fraction string, or null.
func (q *Quantity) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*q = Quantity{}
		return nil
	case int:
		*q = NewQuantity(int64(x), 1)
		return nil
	case float64:
		parsed, err := QuantityFromFloat(x)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	case string:
		parsed, err := ParseQuantity(x)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	default:
		return fmt.Errorf("invalid quantity %v", v)
	}
}
