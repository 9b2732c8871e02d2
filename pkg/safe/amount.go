// Package safe provides validation helpers for token amounts in base units.
package safe

import (
	"fmt"
	"math/big"
)

// ParseBaseUnits parses a base-10 integer string into a non-negative *big.Int.
// Leading/trailing whitespace, signs, decimal points and empty strings are all
// rejected; callers upstream must have scaled to base units already.
func ParseBaseUnits(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty base-unit value")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("base-unit value %q is not an unsigned integer", s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("parse base-unit value %q", s)
	}
	return v, nil
}

// NonNegative validates that v is present and not below zero.
func NonNegative(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("nil amount")
	}
	if v.Sign() < 0 {
		return fmt.Errorf("negative amount %s", v.String())
	}
	return nil
}
