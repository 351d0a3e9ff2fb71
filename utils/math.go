package utils

import (
	"errors"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// ErrOverflow reports a quotient that does not fit in 256 bits.
var ErrOverflow = errors.New("result exceeds 256-bit integer range")

// MaxAmount is the largest amount the vault arithmetic can represent,
// 2^256 - 1. Unbounded operation limits report this value.
var MaxAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))

// SafeAdd computes x + y, returning ErrOverflow instead of panicking when
// the sum exceeds 256 bits. Error if either input is negative.
func SafeAdd(x, y math.Int) (math.Int, error) {
	if x.IsNegative() || y.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	sum := new(big.Int).Add(x.BigInt(), y.BigInt())
	if sum.BitLen() > math.MaxBitLen {
		return math.Int{}, fmt.Errorf("%w: %s + %s", ErrOverflow, x, y)
	}
	return math.NewIntFromBigInt(sum), nil
}

// MulDiv computes x * y / z with a full-width intermediate product, so the
// multiplication cannot overflow even when x and y are both near 2^256.
// The quotient truncates toward zero unless roundUp is set, in which case any
// nonzero remainder rounds it up by one. Returns ErrOverflow when the rounded
// quotient exceeds 256 bits, and an error when z is zero or any input is
// negative.
func MulDiv(x, y, z math.Int, roundUp bool) (math.Int, error) {
	if x.IsNegative() || y.IsNegative() || z.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if z.IsZero() {
		return math.Int{}, fmt.Errorf("invalid input: division by zero")
	}

	product := new(big.Int).Mul(x.BigInt(), y.BigInt())
	quo, rem := new(big.Int).QuoRem(product, z.BigInt(), new(big.Int))
	if roundUp && rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	if quo.BitLen() > math.MaxBitLen {
		return math.Int{}, fmt.Errorf("%w: %s * %s / %s", ErrOverflow, x, y, z)
	}
	return math.NewIntFromBigInt(quo), nil
}
