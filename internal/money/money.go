package money

import (
	"database/sql/driver"
	"fmt"
	"math"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value. Gains are positive, expenses are stored
// negative. Arithmetic keeps full precision; rounding to two decimal places
// happens only when an Amount is rendered for a caller.
type Amount struct {
	dec decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// New wraps an existing decimal.
func New(d decimal.Decimal) Amount {
	return Amount{dec: d}
}

// Parse converts a decimal string ("100.50") into an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{dec: d}, nil
}

// FromFloat converts a float into an Amount. NaN and infinities are rejected
// so they can never reach the ledger.
func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, fmt.Errorf("amount %v is not a finite number", f)
	}
	return Amount{dec: decimal.NewFromFloat(f)}, nil
}

// Decimal exposes the underlying decimal for callers that need raw precision.
func (a Amount) Decimal() decimal.Decimal { return a.dec }

// Add returns a + b without rounding.
func (a Amount) Add(b Amount) Amount {
	return Amount{dec: a.dec.Add(b.dec)}
}

// Neg flips the sign. Used exactly once, when an expense is registered.
func (a Amount) Neg() Amount {
	return Amount{dec: a.dec.Neg()}
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a.dec.IsNegative() }

// Equal reports numeric equality (1.5 == 1.50).
func (a Amount) Equal(b Amount) bool { return a.dec.Equal(b.dec) }

// Round2 rounds to two decimal places. Presentation only.
func (a Amount) Round2() Amount {
	return Amount{dec: a.dec.Round(2)}
}

// String renders the amount with exactly two decimal places, e.g. "-30.25".
func (a Amount) String() string {
	return a.dec.StringFixed(2)
}

// Display renders the amount as Brazilian currency, e.g. "R$70.25".
func (a Amount) Display() string {
	cents := a.dec.Round(2).Shift(2).IntPart()
	return gomoney.New(cents, gomoney.BRL).Display()
}

// MarshalJSON emits a plain JSON number rounded to two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.dec.Round(2).StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string and rejects
// anything non-numeric.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	a.dec = d
	return nil
}

// Value implements driver.Valuer so an Amount maps to a NUMERIC column.
func (a Amount) Value() (driver.Value, error) {
	return a.dec.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("scan amount: %w", err)
	}
	a.dec = d
	return nil
}
