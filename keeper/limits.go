package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/utils"
)

// MaxDeposit returns the largest asset amount that may be deposited for
// receiver. The vault imposes no per-account cap, so the limit is the
// arithmetic ceiling, or zero while deposits are unavailable.
func (k *Keeper) MaxDeposit(_ context.Context, _ sdk.AccAddress) math.Int {
	if k.vault.Paused || !k.vault.DepositsEnabled {
		return math.ZeroInt()
	}
	return utils.MaxAmount
}

// MaxMint returns the largest share amount that may be minted to receiver,
// or zero while deposits are unavailable.
func (k *Keeper) MaxMint(_ context.Context, _ sdk.AccAddress) math.Int {
	if k.vault.Paused || !k.vault.DepositsEnabled {
		return math.ZeroInt()
	}
	return utils.MaxAmount
}

// MaxWithdraw returns the largest asset amount owner can withdraw, the
// current value of owner's share balance rounded down, or zero while
// withdrawals are unavailable.
func (k *Keeper) MaxWithdraw(ctx context.Context, owner sdk.AccAddress) (math.Int, error) {
	if k.vault.Paused || !k.vault.WithdrawalsEnabled {
		return math.ZeroInt(), nil
	}
	balance := k.ledger.GetBalance(ctx, owner, k.vault.ShareDenom).Amount
	return k.convertToAssets(ctx, balance, false)
}

// MaxRedeem returns the largest share amount owner can redeem, owner's full
// share balance, or zero while withdrawals are unavailable.
func (k *Keeper) MaxRedeem(ctx context.Context, owner sdk.AccAddress) math.Int {
	if k.vault.Paused || !k.vault.WithdrawalsEnabled {
		return math.ZeroInt()
	}
	return k.ledger.GetBalance(ctx, owner, k.vault.ShareDenom).Amount
}
