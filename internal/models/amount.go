package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StandardizeAmount strips the formatting the export tooling sprinkles into
// amount columns: surrounding whitespace, thousands separators, and a
// trailing-sign notation ("100.00-" becomes "-100.00").
func StandardizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "'", "")
	if strings.HasSuffix(s, "-") {
		s = "-" + strings.TrimSuffix(s, "-")
	}
	return s
}

// ParseAmount parses a standardized amount string into an exact decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(StandardizeAmount(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// MustAmount is ParseAmount for literals in tests and defaults; it panics on
// malformed input.
func MustAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return d
}
