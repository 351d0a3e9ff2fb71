package bank

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/types"
)

// GenesisState holds the bank's exportable state. Supplies are recomputed
// from balances on import, so only balances and allowances are carried.
type GenesisState struct {
	Balances   []Balance   `json:"balances"`
	Allowances []Allowance `json:"allowances"`
}

// Balance pairs an account address with the coins it holds.
type Balance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

// Allowance records one owner to spender grant for a single denom.
type Allowance struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Coin    sdk.Coin `json:"coin"`
}

// Validate performs basic validation of the bank genesis state.
func (gs GenesisState) Validate() error {
	seenAddrs := make(map[string]bool, len(gs.Balances))
	for _, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return fmt.Errorf("invalid balance address %q: %w", b.Address, err)
		}
		if seenAddrs[b.Address] {
			return fmt.Errorf("duplicate balance address %s", b.Address)
		}
		seenAddrs[b.Address] = true
		if err := b.Coins.Validate(); err != nil {
			return fmt.Errorf("invalid coins for address %s: %w", b.Address, err)
		}
	}
	seenGrants := make(map[string]bool, len(gs.Allowances))
	for _, a := range gs.Allowances {
		if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
			return fmt.Errorf("invalid allowance owner %q: %w", a.Owner, err)
		}
		if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
			return fmt.Errorf("invalid allowance spender %q: %w", a.Spender, err)
		}
		if err := types.ValidateCoin(a.Coin); err != nil {
			return fmt.Errorf("invalid allowance coin for owner %s: %w", a.Owner, err)
		}
		grant := a.Owner + "/" + a.Coin.Denom + "/" + a.Spender
		if seenGrants[grant] {
			return fmt.Errorf("duplicate allowance %s", grant)
		}
		seenGrants[grant] = true
	}
	return nil
}

// InitGenesis loads balances and allowances into state. Each denom's supply
// is derived by summing the imported balances.
func (k *Keeper) InitGenesis(ctx context.Context, gs *GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	for _, b := range gs.Balances {
		addr := sdk.MustAccAddressFromBech32(b.Address)
		for _, coin := range b.Coins {
			if err := k.MintCoin(ctx, addr, coin); err != nil {
				return err
			}
		}
	}
	for _, a := range gs.Allowances {
		owner := sdk.MustAccAddressFromBech32(a.Owner)
		spender := sdk.MustAccAddressFromBech32(a.Spender)
		if err := k.SetAllowance(ctx, owner, spender, a.Coin); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis writes all balances and allowances into a genesis state.
// Entries come out in store key order, so exports are deterministic.
func (k *Keeper) ExportGenesis(ctx context.Context) (*GenesisState, error) {
	gs := &GenesisState{}
	err := k.Balances.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], amt math.Int) (bool, error) {
		addr := key.K1().String()
		coin := sdk.NewCoin(key.K2(), amt)
		if n := len(gs.Balances); n > 0 && gs.Balances[n-1].Address == addr {
			gs.Balances[n-1].Coins = gs.Balances[n-1].Coins.Add(coin)
		} else {
			gs.Balances = append(gs.Balances, Balance{Address: addr, Coins: sdk.NewCoins(coin)})
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	err = k.Allowances.Walk(ctx, nil, func(key collections.Triple[sdk.AccAddress, string, sdk.AccAddress], amt math.Int) (bool, error) {
		gs.Allowances = append(gs.Allowances, Allowance{
			Owner:   key.K1().String(),
			Spender: key.K3().String(),
			Coin:    sdk.NewCoin(key.K2(), amt),
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
