package bank

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/types"
	"github.com/jmakwana0x1/ERC4626Vault/utils"
)

var (
	_ types.ShareLedger = (*Keeper)(nil)
	_ types.BankKeeper  = (*Keeper)(nil)
)

// Keeper is a minimal multi-denom bank. It tracks per-denom supply, account
// balances, and owner to spender allowances. The vault uses it both as the
// share ledger and as the transfer channel for the underlying asset, and all
// balance reads resolve against whatever store branch is active in ctx.
type Keeper struct {
	logger log.Logger

	Schema collections.Schema
	// Supplies maps denom to the total minted amount.
	Supplies collections.Map[string, math.Int]
	// Balances maps (address, denom) to the account balance.
	Balances collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	// Allowances maps (owner, denom, spender) to the remaining spendable amount.
	Allowances collections.Map[collections.Triple[sdk.AccAddress, string, sdk.AccAddress], math.Int]
}

// NewKeeper returns a new bank keeper backed by the given store service.
func NewKeeper(storeService corestore.KVStoreService, logger log.Logger) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		logger:     logger.With("module", "bank"),
		Supplies:   collections.NewMap(sb, types.SuppliesKeyPrefix, types.SuppliesName, collections.StringKey, sdk.IntValue),
		Balances:   collections.NewMap(sb, types.BalancesKeyPrefix, types.BalancesName, collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		Allowances: collections.NewMap(sb, types.AllowancesKeyPrefix, types.AllowancesName, collections.TripleKeyCodec(sdk.AccAddressKey, collections.StringKey, sdk.AccAddressKey), sdk.IntValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// GetBalance returns the balance of addr for denom. Missing entries read as zero.
func (k *Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt, err := k.Balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		amt = math.ZeroInt()
	}
	return sdk.NewCoin(denom, amt)
}

// GetAllBalances returns every coin held by addr.
func (k *Keeper) GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	balances := sdk.NewCoins()
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, string](addr)
	err := k.Balances.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, string], amt math.Int) (bool, error) {
		balances = balances.Add(sdk.NewCoin(key.K2(), amt))
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return balances
}

// GetSupply returns the total minted amount of denom. Missing entries read as zero.
func (k *Keeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	amt, err := k.Supplies.Get(ctx, denom)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		amt = math.ZeroInt()
	}
	return sdk.NewCoin(denom, amt)
}

// SendCoins moves amt from fromAddr to toAddr. Every balance is checked
// before the first write, so a failure never leaves a partial transfer.
func (k *Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if fromAddr.Empty() || toAddr.Empty() {
		return types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := amt.Validate(); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	for _, coin := range amt {
		balance := k.GetBalance(ctx, fromAddr, coin.Denom).Amount
		if balance.LT(coin.Amount) {
			return types.ErrInsufficientBalance.Wrapf("spendable balance %s is smaller than %s", sdk.NewCoin(coin.Denom, balance), coin)
		}
	}
	for _, coin := range amt {
		if err := k.subBalance(ctx, fromAddr, coin.Denom, coin.Amount); err != nil {
			return err
		}
		if err := k.addBalance(ctx, toAddr, coin.Denom, coin.Amount); err != nil {
			return err
		}
	}
	return nil
}

// MintCoin creates new units of coin.Denom out of thin air and credits them
// to recipient, growing the denom's supply by the same amount.
func (k *Keeper) MintCoin(ctx context.Context, recipient sdk.AccAddress, coin sdk.Coin) error {
	if recipient.Empty() {
		return types.ErrInvalidRequest.Wrap("recipient address cannot be empty")
	}
	if err := types.ValidateCoin(coin); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	if coin.IsZero() {
		return nil
	}
	supply, err := utils.SafeAdd(k.GetSupply(ctx, coin.Denom).Amount, coin.Amount)
	if err != nil {
		return types.ErrArithmeticOverflow.Wrap(err.Error())
	}
	if err := k.addBalance(ctx, recipient, coin.Denom, coin.Amount); err != nil {
		return err
	}
	if err := k.Supplies.Set(ctx, coin.Denom, supply); err != nil {
		return err
	}
	k.logger.Debug("minted coin", "recipient", recipient.String(), "amount", coin.String())
	return nil
}

// BurnCoin destroys units of coin.Denom held by owner, shrinking the denom's
// supply by the same amount.
func (k *Keeper) BurnCoin(ctx context.Context, owner sdk.AccAddress, coin sdk.Coin) error {
	if owner.Empty() {
		return types.ErrInvalidRequest.Wrap("owner address cannot be empty")
	}
	if err := types.ValidateCoin(coin); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	if coin.IsZero() {
		return nil
	}
	if err := k.subBalance(ctx, owner, coin.Denom, coin.Amount); err != nil {
		return err
	}
	supply := k.GetSupply(ctx, coin.Denom).Amount
	if supply.LT(coin.Amount) {
		return types.ErrInvalidRequest.Wrapf("burn amount %s exceeds supply %s", coin, sdk.NewCoin(coin.Denom, supply))
	}
	if err := k.setSupply(ctx, coin.Denom, supply.Sub(coin.Amount)); err != nil {
		return err
	}
	k.logger.Debug("burned coin", "owner", owner.String(), "amount", coin.String())
	return nil
}

// GetAllowance returns the amount spender may still transfer out of owner's
// balance of denom. Missing grants read as zero.
func (k *Keeper) GetAllowance(ctx context.Context, owner, spender sdk.AccAddress, denom string) sdk.Coin {
	amt, err := k.Allowances.Get(ctx, collections.Join3(owner, denom, spender))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		amt = math.ZeroInt()
	}
	return sdk.NewCoin(denom, amt)
}

// SetAllowance grants spender the right to transfer up to coin out of owner's
// balance, replacing any prior grant. A zero amount revokes the grant.
func (k *Keeper) SetAllowance(ctx context.Context, owner, spender sdk.AccAddress, coin sdk.Coin) error {
	if owner.Empty() || spender.Empty() {
		return types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(coin); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	key := collections.Join3(owner, coin.Denom, spender)
	if coin.Amount.IsZero() {
		return k.Allowances.Remove(ctx, key)
	}
	return k.Allowances.Set(ctx, key, coin.Amount)
}

// SpendAllowance deducts coin from spender's grant, failing when the grant is
// missing or smaller than the requested amount. Spending the full grant
// removes it.
func (k *Keeper) SpendAllowance(ctx context.Context, owner, spender sdk.AccAddress, coin sdk.Coin) error {
	if owner.Empty() || spender.Empty() {
		return types.ErrInvalidRequest.Wrap("address cannot be empty")
	}
	if err := types.ValidateCoin(coin); err != nil {
		return types.ErrInvalidRequest.Wrap(err.Error())
	}
	if coin.IsZero() {
		return nil
	}
	allowance := k.GetAllowance(ctx, owner, spender, coin.Denom).Amount
	if allowance.LT(coin.Amount) {
		return types.ErrAllowanceExceeded.Wrapf("allowance %s is smaller than %s", sdk.NewCoin(coin.Denom, allowance), coin)
	}
	return k.SetAllowance(ctx, owner, spender, sdk.NewCoin(coin.Denom, allowance.Sub(coin.Amount)))
}

func (k *Keeper) addBalance(ctx context.Context, addr sdk.AccAddress, denom string, amt math.Int) error {
	balance := k.GetBalance(ctx, addr, denom).Amount
	return k.setBalance(ctx, addr, denom, balance.Add(amt))
}

func (k *Keeper) subBalance(ctx context.Context, addr sdk.AccAddress, denom string, amt math.Int) error {
	balance := k.GetBalance(ctx, addr, denom).Amount
	if balance.LT(amt) {
		return types.ErrInsufficientBalance.Wrapf("spendable balance %s is smaller than %s", sdk.NewCoin(denom, balance), sdk.NewCoin(denom, amt))
	}
	return k.setBalance(ctx, addr, denom, balance.Sub(amt))
}

// setBalance writes the balance, removing the entry entirely when it hits
// zero so iteration never visits empty accounts.
func (k *Keeper) setBalance(ctx context.Context, addr sdk.AccAddress, denom string, amt math.Int) error {
	key := collections.Join(addr, denom)
	if amt.IsZero() {
		return k.Balances.Remove(ctx, key)
	}
	return k.Balances.Set(ctx, key, amt)
}

func (k *Keeper) setSupply(ctx context.Context, denom string, amt math.Int) error {
	if amt.IsZero() {
		return k.Supplies.Remove(ctx, denom)
	}
	return k.Supplies.Set(ctx, denom, amt)
}
