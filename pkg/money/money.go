// Package money provides the fixed-point decimal representation used for
// every monetary amount in the ledger: scale 10^-8, banker's rounding on
// any operation that can produce extra precision.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places the ledger stores and compares at.
const Scale = 8

// Amount wraps decimal.Decimal, always normalized to Scale places.
type Amount struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Amount{d: decimal.Zero}

// NewFromString parses a decimal string (e.g. "12.50000000") into an Amount.
func NewFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Amount{d: d.RoundBank(Scale)}, nil
}

// MustNewFromString is NewFromString for callers with a known-valid literal,
// such as test fixtures and migration seed data. It panics on parse error.
func MustNewFromString(s string) Amount {
	a, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewFromFloat builds an Amount from a float64, rounded to Scale.
// Reserved for values that already come from a float-typed source
// (e.g. third-party SDK responses); ledger arithmetic itself never
// introduces floats.
func NewFromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f).RoundBank(Scale)}
}

// NewFromDecimal wraps an existing decimal.Decimal, rounding it to Scale.
func NewFromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d.RoundBank(Scale)}
}

// NewFromInt builds an Amount from a whole number, e.g. a unit count.
func NewFromInt(n int64) Amount {
	return Amount{d: decimal.NewFromInt(n)}
}

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) String() string { return a.d.StringFixed(Scale) }

// Add returns a+b, rounded to Scale.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d).RoundBank(Scale)}
}

// Sub returns a-b, rounded to Scale.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d).RoundBank(Scale)}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Mul returns a*b, rounded to Scale. Used for price × units billing.
func (a Amount) Mul(b Amount) Amount {
	return Amount{d: a.d.Mul(b.d).RoundBank(Scale)}
}

// Cmp returns -1, 0 or 1 comparing a to b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

func (a Amount) IsZero() bool     { return a.d.IsZero() }
func (a Amount) IsPositive() bool { return a.d.IsPositive() }
func (a Amount) IsNegative() bool { return a.d.IsNegative() }

// GreaterThan reports whether a > b.
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool { return a.d.LessThan(b.d) }

// MarshalJSON encodes the amount as a JSON string, preserving trailing zeros
// so clients always see a fixed 8-decimal value.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := NewFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer for Postgres NUMERIC columns.
func (a Amount) Value() (driver.Value, error) {
	return a.d.StringFixed(Scale), nil
}

// Scan implements sql.Scanner for Postgres NUMERIC columns.
func (a *Amount) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("money: scan: %w", err)
	}
	*a = Amount{d: d.RoundBank(Scale)}
	return nil
}
