package keeper

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/types"
)

// channelPassThrough lists the registered errors collaborators may surface
// unchanged. Anything outside this set is wrapped as a transfer failure so
// operation callers always see a closed error set.
var channelPassThrough = []*errorsmod.Error{
	types.ErrInvalidRequest,
	types.ErrInsufficientBalance,
	types.ErrAllowanceExceeded,
	types.ErrArithmeticOverflow,
}

// Deposit pulls assets from caller into the pool and mints the corresponding
// shares to receiver.
//
// It performs the following steps:
//  1. Verifies the vault is neither paused nor closed to deposits.
//  2. Validates the parties and the deposited coin.
//  3. Checks the deposit limit for receiver.
//  4. Converts the assets to shares at the current rate, rounding down so
//     rounding dust stays with the pool.
//  5. Transfers the assets from caller to the pool and mints the shares to
//     receiver inside a single atomic branch.
//  6. Emits an EventDeposit once the branch has committed.
//
// Returns the minted share coin on success, or an error if any step fails.
func (k *Keeper) Deposit(ctx context.Context, caller, receiver sdk.AccAddress, assets sdk.Coin) (sdk.Coin, error) {
	if err := k.validateDepositOpen(); err != nil {
		return sdk.Coin{}, err
	}
	if caller.Empty() || receiver.Empty() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateUnderlyingAsset(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if limit := k.MaxDeposit(ctx, receiver); assets.Amount.GT(limit) {
		return sdk.Coin{}, types.ErrLimitExceeded.Wrapf("deposit of %s exceeds limit %s", assets, limit)
	}

	shares, err := k.convertToShares(ctx, assets.Amount, false)
	if err != nil {
		return sdk.Coin{}, err
	}
	shareCoin := sdk.NewCoin(k.vault.ShareDenom, shares)

	err = k.branch.Execute(ctx, func(ctx context.Context) error {
		if err := k.pullAssets(ctx, caller, assets); err != nil {
			return err
		}
		return wrapChannelErr(k.ledger.MintCoin(ctx, receiver, shareCoin))
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.NewEventDeposit(k.vault.Address.String(), caller, receiver, assets, shareCoin))
	return shareCoin, nil
}

// Mint pulls exactly enough assets from caller to mint the requested shares
// to receiver. The asset charge rounds up, so the pool is never undercharged
// for the shares it issues. Returns the asset coin pulled.
func (k *Keeper) Mint(ctx context.Context, caller, receiver sdk.AccAddress, shares sdk.Coin) (sdk.Coin, error) {
	if err := k.validateDepositOpen(); err != nil {
		return sdk.Coin{}, err
	}
	if caller.Empty() || receiver.Empty() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateShares(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if limit := k.MaxMint(ctx, receiver); shares.Amount.GT(limit) {
		return sdk.Coin{}, types.ErrLimitExceeded.Wrapf("mint of %s exceeds limit %s", shares, limit)
	}

	assets, err := k.convertToAssets(ctx, shares.Amount, true)
	if err != nil {
		return sdk.Coin{}, err
	}
	assetCoin := sdk.NewCoin(k.vault.UnderlyingAsset, assets)

	err = k.branch.Execute(ctx, func(ctx context.Context) error {
		if err := k.pullAssets(ctx, caller, assetCoin); err != nil {
			return err
		}
		return wrapChannelErr(k.ledger.MintCoin(ctx, receiver, shares))
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.NewEventDeposit(k.vault.Address.String(), caller, receiver, assetCoin, shares))
	return assetCoin, nil
}

// Withdraw burns shares from owner and pushes the requested assets from the
// pool to receiver. The share burn rounds up, so the pool always collects at
// least the value it pays out. A caller other than owner spends owner's share
// allowance for the burned amount.
//
// The allowance spend, the burn, and the asset push happen inside one atomic
// branch, and the burn lands before the push so a reentrant call during the
// push observes the already reduced share supply. Returns the burned share
// coin.
func (k *Keeper) Withdraw(ctx context.Context, caller, receiver, owner sdk.AccAddress, assets sdk.Coin) (sdk.Coin, error) {
	if err := k.validateWithdrawOpen(); err != nil {
		return sdk.Coin{}, err
	}
	if caller.Empty() || receiver.Empty() || owner.Empty() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateUnderlyingAsset(assets); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	limit, err := k.MaxWithdraw(ctx, owner)
	if err != nil {
		return sdk.Coin{}, err
	}
	if assets.Amount.GT(limit) {
		return sdk.Coin{}, types.ErrLimitExceeded.Wrapf("withdrawal of %s exceeds limit %s for %s", assets, limit, owner)
	}

	shares, err := k.convertToShares(ctx, assets.Amount, true)
	if err != nil {
		return sdk.Coin{}, err
	}
	shareCoin := sdk.NewCoin(k.vault.ShareDenom, shares)

	err = k.branch.Execute(ctx, func(ctx context.Context) error {
		if !caller.Equals(owner) {
			if err := wrapChannelErr(k.ledger.SpendAllowance(ctx, owner, caller, shareCoin)); err != nil {
				return err
			}
		}
		if err := wrapChannelErr(k.ledger.BurnCoin(ctx, owner, shareCoin)); err != nil {
			return err
		}
		return k.pushAssets(ctx, receiver, assets)
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.NewEventWithdraw(k.vault.Address.String(), caller, receiver, owner, assets, shareCoin))
	return shareCoin, nil
}

// Redeem burns the requested shares from owner and pushes the corresponding
// assets, rounded down, from the pool to receiver. A caller other than owner
// spends owner's share allowance for the burned amount. Returns the asset
// coin paid out.
func (k *Keeper) Redeem(ctx context.Context, caller, receiver, owner sdk.AccAddress, shares sdk.Coin) (sdk.Coin, error) {
	if err := k.validateWithdrawOpen(); err != nil {
		return sdk.Coin{}, err
	}
	if caller.Empty() || receiver.Empty() || owner.Empty() {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if err := k.vault.ValidateShares(shares); err != nil {
		return sdk.Coin{}, types.ErrInvalidRequest.Wrap(err.Error())
	}
	if limit := k.MaxRedeem(ctx, owner); shares.Amount.GT(limit) {
		return sdk.Coin{}, types.ErrLimitExceeded.Wrapf("redemption of %s exceeds limit %s for %s", shares, limit, owner)
	}

	assets, err := k.convertToAssets(ctx, shares.Amount, false)
	if err != nil {
		return sdk.Coin{}, err
	}
	assetCoin := sdk.NewCoin(k.vault.UnderlyingAsset, assets)

	err = k.branch.Execute(ctx, func(ctx context.Context) error {
		if !caller.Equals(owner) {
			if err := wrapChannelErr(k.ledger.SpendAllowance(ctx, owner, caller, shares)); err != nil {
				return err
			}
		}
		if err := wrapChannelErr(k.ledger.BurnCoin(ctx, owner, shares)); err != nil {
			return err
		}
		return k.pushAssets(ctx, receiver, assetCoin)
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.NewEventWithdraw(k.vault.Address.String(), caller, receiver, owner, assetCoin, shares))
	return assetCoin, nil
}

// SetPaused halts or resumes all user operations. Only the vault admin may
// call it, and setting the current value is a no-op.
func (k *Keeper) SetPaused(ctx context.Context, authority sdk.AccAddress, paused bool) error {
	if err := k.validateAdmin(authority); err != nil {
		return err
	}
	if k.vault.Paused == paused {
		return nil
	}
	k.vault.Paused = paused
	total := sdk.NewCoin(k.vault.UnderlyingAsset, k.TotalAssets(ctx))
	if paused {
		k.emitEvent(ctx, types.NewEventVaultPaused(k.vault.Address.String(), authority, total))
	} else {
		k.emitEvent(ctx, types.NewEventVaultUnpaused(k.vault.Address.String(), authority, total))
	}
	k.logger.Info("vault pause state changed", "vault", k.vault.Address.String(), "paused", paused)
	return nil
}

// SetDepositsEnabled updates the DepositsEnabled flag for the vault and emits
// an EventToggleDeposits event. Setting the current value is a no-op.
func (k *Keeper) SetDepositsEnabled(ctx context.Context, authority sdk.AccAddress, enabled bool) error {
	if err := k.validateAdmin(authority); err != nil {
		return err
	}
	if k.vault.DepositsEnabled == enabled {
		return nil
	}
	k.vault.DepositsEnabled = enabled
	k.emitEvent(ctx, types.NewEventToggleDeposits(k.vault.Address.String(), authority, enabled))
	return nil
}

// SetWithdrawalsEnabled updates the WithdrawalsEnabled flag for the vault and
// emits an EventToggleWithdrawals event. Setting the current value is a no-op.
func (k *Keeper) SetWithdrawalsEnabled(ctx context.Context, authority sdk.AccAddress, enabled bool) error {
	if err := k.validateAdmin(authority); err != nil {
		return err
	}
	if k.vault.WithdrawalsEnabled == enabled {
		return nil
	}
	k.vault.WithdrawalsEnabled = enabled
	k.emitEvent(ctx, types.NewEventToggleWithdrawals(k.vault.Address.String(), authority, enabled))
	return nil
}

func (k *Keeper) validateAdmin(authority sdk.AccAddress) error {
	if !authority.Equals(k.vault.Admin) {
		return types.ErrUnauthorized.Wrapf("%s does not have permission to administer vault %s", authority.String(), k.vault.Address.String())
	}
	return nil
}

func (k *Keeper) validateDepositOpen() error {
	if k.vault.Paused {
		return types.ErrVaultPaused.Wrap(k.vault.Address.String())
	}
	if !k.vault.DepositsEnabled {
		return types.ErrDepositsDisabled.Wrap(k.vault.Address.String())
	}
	return nil
}

func (k *Keeper) validateWithdrawOpen() error {
	if k.vault.Paused {
		return types.ErrVaultPaused.Wrap(k.vault.Address.String())
	}
	if !k.vault.WithdrawalsEnabled {
		return types.ErrWithdrawalsDisabled.Wrap(k.vault.Address.String())
	}
	return nil
}

// pullAssets moves assets from the caller into the pool account.
func (k *Keeper) pullAssets(ctx context.Context, from sdk.AccAddress, assets sdk.Coin) error {
	return wrapChannelErr(k.bank.SendCoins(ctx, from, k.vault.Address, sdk.NewCoins(assets)))
}

// pushAssets moves assets from the pool account to the receiver.
func (k *Keeper) pushAssets(ctx context.Context, to sdk.AccAddress, assets sdk.Coin) error {
	return wrapChannelErr(k.bank.SendCoins(ctx, k.vault.Address, to, sdk.NewCoins(assets)))
}

func wrapChannelErr(err error) error {
	if err == nil {
		return nil
	}
	for _, reg := range channelPassThrough {
		if errors.Is(err, reg) {
			return err
		}
	}
	return types.ErrTransferFailure.Wrap(err.Error())
}
