package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/types"
	"github.com/jmakwana0x1/ERC4626Vault/utils"
)

// TotalAssets returns the pool's balance of the underlying asset, read live
// from the bank. Assets sent to the pool outside of Deposit and Mint still
// count, which is what lets donations raise the share price.
func (k *Keeper) TotalAssets(ctx context.Context) math.Int {
	return k.bank.GetBalance(ctx, k.vault.Address, k.vault.UnderlyingAsset).Amount
}

// TotalShares returns the outstanding share supply reported by the ledger.
func (k *Keeper) TotalShares(ctx context.Context) math.Int {
	return k.ledger.GetSupply(ctx, k.vault.ShareDenom).Amount
}

// NAVPerShare returns the value of one share in underlying asset units.
// A vault with no outstanding shares reports zero.
func (k *Keeper) NAVPerShare(ctx context.Context) math.LegacyDec {
	totalShares := k.TotalShares(ctx)
	if totalShares.IsZero() {
		return math.LegacyZeroDec()
	}
	return math.LegacyNewDecFromInt(k.TotalAssets(ctx)).QuoInt(totalShares)
}

// ConvertToShares returns the shares corresponding to the given assets at the
// current exchange rate, rounding down. Callers who need the exact charge for
// a mint should use PreviewMint instead.
func (k *Keeper) ConvertToShares(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	if err := types.ValidateCoin(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateUnderlyingAsset(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	shares, err := k.convertToShares(ctx, assets.Amount, false)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(k.vault.ShareDenom, shares), nil
}

// ConvertToAssets returns the assets corresponding to the given shares at the
// current exchange rate, rounding down.
func (k *Keeper) ConvertToAssets(ctx context.Context, shares sdk.Coin) (sdk.Coin, error) {
	if err := types.ValidateCoin(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateShares(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	assets, err := k.convertToAssets(ctx, shares.Amount, false)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(k.vault.UnderlyingAsset, assets), nil
}

// PreviewDeposit returns the shares Deposit would mint for the given assets.
// Like Deposit itself, the result rounds down.
func (k *Keeper) PreviewDeposit(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	return k.ConvertToShares(ctx, assets)
}

// PreviewMint returns the assets Mint would pull for the given shares.
// Like Mint itself, the charge rounds up.
func (k *Keeper) PreviewMint(ctx context.Context, shares sdk.Coin) (sdk.Coin, error) {
	if err := types.ValidateCoin(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateShares(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	assets, err := k.convertToAssets(ctx, shares.Amount, true)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(k.vault.UnderlyingAsset, assets), nil
}

// PreviewWithdraw returns the shares Withdraw would burn for the given
// assets. Like Withdraw itself, the burn rounds up.
func (k *Keeper) PreviewWithdraw(ctx context.Context, assets sdk.Coin) (sdk.Coin, error) {
	if err := types.ValidateCoin(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateUnderlyingAsset(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	shares, err := k.convertToShares(ctx, assets.Amount, true)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(k.vault.ShareDenom, shares), nil
}

// PreviewRedeem returns the assets Redeem would pay for the given shares.
// Like Redeem itself, the payout rounds down.
func (k *Keeper) PreviewRedeem(ctx context.Context, shares sdk.Coin) (sdk.Coin, error) {
	return k.ConvertToAssets(ctx, shares)
}

// convertToShares converts an asset amount using the live totals. Rounding
// direction is chosen by the caller, entry paths round down and exit paths
// round up so the pool keeps the dust.
func (k *Keeper) convertToShares(ctx context.Context, assets math.Int, roundUp bool) (math.Int, error) {
	shares, err := utils.CalculateSharesFromAssets(assets, k.TotalAssets(ctx), k.TotalShares(ctx), roundUp)
	if err != nil {
		return math.Int{}, convErr(err)
	}
	return shares, nil
}

// convertToAssets converts a share amount using the live totals.
func (k *Keeper) convertToAssets(ctx context.Context, shares math.Int, roundUp bool) (math.Int, error) {
	assets, err := utils.CalculateAssetsFromShares(shares, k.TotalShares(ctx), k.TotalAssets(ctx), roundUp)
	if err != nil {
		return math.Int{}, convErr(err)
	}
	return assets, nil
}

// convErr maps conversion failures into the vault error taxonomy.
func convErr(err error) error {
	if errors.Is(err, utils.ErrOverflow) {
		return types.ErrArithmeticOverflow.Wrap(err.Error())
	}
	return types.ErrInvalidRequest.Wrap(err.Error())
}
