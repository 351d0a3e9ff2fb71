package types

import (
	context "context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareLedger is the external ledger that tracks share supply, holder
// balances, and spend allowances. The keeper never records share totals
// itself, every share figure is read back through this interface.
type ShareLedger interface {
	MintCoin(ctx context.Context, recipient sdk.AccAddress, coin sdk.Coin) error
	BurnCoin(ctx context.Context, owner sdk.AccAddress, coin sdk.Coin) error
	SpendAllowance(ctx context.Context, owner, spender sdk.AccAddress, coin sdk.Coin) error
	GetSupply(ctx context.Context, denom string) sdk.Coin
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// BankKeeper is the transfer channel for the underlying asset. The vault pulls
// deposits from callers and pushes withdrawals to receivers through it.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// BranchService runs state mutations against a branched store that is written
// back only when fn returns nil. Nested calls branch the branch, so a failed
// inner operation cannot dirty its caller's state.
type BranchService interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
