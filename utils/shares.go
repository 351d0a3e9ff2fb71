package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// CalculateSharesFromAssets returns the number of shares that correspond
// to a given amount of assets at the pool's current exchange rate.
//
// Formula (integer):
//
//	if totalShares == 0:  shares = assets                            (bootstrap, 1:1)
//	if totalAssets == 0:  shares = assets                            (pool emptied, restart 1:1)
//	else:                 shares = assets * totalShares / totalAssets
//
// The division truncates unless roundUp is set. Entry paths round down and
// exit paths round up, so rounding dust always accrues to the pool.
// Error if any input is negative or the result exceeds 256 bits.
func CalculateSharesFromAssets(
	assets math.Int,
	totalAssets math.Int,
	totalShares math.Int,
	roundUp bool,
) (math.Int, error) {
	if assets.IsNegative() || totalAssets.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if totalShares.IsZero() || totalAssets.IsZero() {
		return assets, nil
	}
	return MulDiv(assets, totalShares, totalAssets, roundUp)
}

// CalculateAssetsFromShares returns the amount of assets that correspond
// to a given number of shares at the pool's current exchange rate.
//
// Formula (integer):
//
//	if totalShares == 0:  shares and assets convert 1:1              (bootstrap)
//	else:                 assets = shares * totalAssets / totalShares
//
// The division truncates unless roundUp is set. When the pool holds shares
// but no assets the result is zero, shares have no backing to claim.
// Error if any input is negative or the result exceeds 256 bits.
func CalculateAssetsFromShares(
	shares math.Int,
	totalShares math.Int,
	totalAssets math.Int,
	roundUp bool,
) (math.Int, error) {
	if shares.IsNegative() || totalShares.IsNegative() || totalAssets.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if totalShares.IsZero() {
		return shares, nil
	}
	return MulDiv(shares, totalAssets, totalShares, roundUp)
}
