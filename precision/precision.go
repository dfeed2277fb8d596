// Package precision converts between exchange precision digit counts and
// the tick strings they describe.
package precision

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrecision = errors.New("invalid precision")

// MaxDigits bounds |n| for every function in this package. Real exchanges
// stay below 20; the bound keeps rendered ticks small.
const MaxDigits = 4096

var ten = big.NewInt(10)

// ParsePrecision turns a signed digit count such as "8" or "-2" into the
// smallest unit at that precision, "0.00000001" or "100".
func ParsePrecision(digits string) (string, error) {
	n, err := ParseDigits(digits)
	if err != nil {
		return "", err
	}

	return Digits(n), nil
}

// ParseDigits parses a signed digit count within ±MaxDigits.
func ParseDigits(digits string) (int, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPrecision, digits)
	}

	if n > MaxDigits || n < -MaxDigits {
		return 0, fmt.Errorf("%w: %q is outside ±%d digits", ErrInvalidPrecision, digits, MaxDigits)
	}

	return int(n), nil
}

// Digits renders 10^(-n) as a plain decimal string. n must be within
// ±MaxDigits.
func Digits(n int) string {
	switch {
	case n > 0:
		return "0." + strings.Repeat("0", n-1) + "1"
	case n < 0:
		return "1" + strings.Repeat("0", -n)
	default:
		return "1"
	}
}

// TickSize is 10^(-n). n must be within ±MaxDigits.
func TickSize(n int) decimal.Decimal {
	return decimal.New(1, int32(-n))
}

// FromString reports the precision of a tick such as "0.001", "1e-8" or "100".
// Trailing zeros are not significant, so FromString(ParsePrecision(n)) == n.
func FromString(tick string) (int, error) {
	d, err := decimal.NewFromString(tick)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPrecision, tick)
	}

	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: tick %q must be positive", ErrInvalidPrecision, tick)
	}

	n := -int(significantExponent(d))
	if n > MaxDigits || n < -MaxDigits {
		return 0, fmt.Errorf("%w: tick %q is outside ±%d digits", ErrInvalidPrecision, tick, MaxDigits)
	}

	return n, nil
}

func significantExponent(d decimal.Decimal) int32 {
	coef := d.Coefficient()
	exp := d.Exponent()

	if coef.Sign() == 0 {
		return exp
	}

	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			return exp
		}
		coef = new(big.Int).Set(q)
		exp++
	}
}
