// Package core provides money parsing and handling utilities.
//
// This file contains functions for coercing monetary amounts typed by the
// user and for rendering amounts in a currency.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ParseCost coerces a card cost. Any decimal number is accepted, including
// negative values and exponents ("1e2").
//
// Examples:
//
//	ParseCost("10")    -> 10, nil
//	ParseCost(" 2.5 ") -> 2.5, nil
//	ParseCost("ten")   -> 0, ErrInvalidCost
func ParseCost(s string) (decimal.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCost, s)
	}
	return d, nil
}

// ParseAmount coerces a revenue amount with the same rules as ParseCost.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}

// FormatMoney renders amount in the given ISO currency, e.g. "$10.00".
// Unknown currencies fall back to a plain two-decimal string.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// IsKnownCurrency reports whether code is an ISO currency go-money knows.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
