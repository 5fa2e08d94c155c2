// Package core holds the budget ledger domain: money handling, the
// ledger aggregate, its mutation operations and derived summaries.
//
// This file contains money parsing and formatting. Amounts are kept as
// whole cents so sums over stored values stay exact.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount held as whole cents. Every Money is
// already rounded to two decimal places at construction time; nothing
// downstream ever needs to round again.
type Money struct {
	Cents int64
}

// NewMoney rounds d to two decimal places, half away from zero, and
// converts it to cents.
func NewMoney(d decimal.Decimal) Money {
	return Money{Cents: d.Round(2).Shift(2).IntPart()}
}

// ParseAmount converts raw user input to Money. The contract is
// deliberately permissive: anything that does not parse as a number
// coerces to zero instead of failing, so "typed nothing" and "typed
// zero" are indistinguishable to callers. A decimal comma is accepted
// as separator.
//
// Examples:
//
//	ParseAmount("120.555") -> 120.56
//	ParseAmount("120,50")  -> 120.50
//	ParseAmount("abc")     -> 0.00
func ParseAmount(s string) Money {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return NewMoney(d)
}

// Decimal returns the amount as a two-decimal decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Add returns the sum of the two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns the difference of the two amounts; may be negative.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Cents < 0
}

// String formats the amount with exactly two decimals, e.g. "120.56".
// Negative amounts carry an explicit leading minus.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a plain JSON number with two
// decimals, keeping the snapshot format free of cent bookkeeping.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON decodes a JSON number (or quoted number) with the same
// permissive fallback as ParseAmount: malformed values become zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Cents = 0
		return nil
	}
	*m = NewMoney(d)
	return nil
}
