package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "vault"
)

var (
	// SuppliesKeyPrefix is the prefix to retrieve all denom supplies.
	SuppliesKeyPrefix = collections.NewPrefix(0)
	// SuppliesName is a human-readable name for the supplies collection.
	SuppliesName = "supplies"
	// BalancesKeyPrefix is the prefix to retrieve all account balances.
	BalancesKeyPrefix = collections.NewPrefix(1)
	// BalancesName is a human-readable name for the balances collection.
	BalancesName = "balances"
	// AllowancesKeyPrefix is the prefix to retrieve all spend allowances.
	AllowancesKeyPrefix = collections.NewPrefix(2)
	// AllowancesName is a human-readable name for the allowances collection.
	AllowancesName = "allowances"
)

// GetVaultAddress returns the pool account address derived from the share denom.
// The derivation is deterministic so a vault's address can be recomputed from
// its configuration alone.
func GetVaultAddress(shareDenom string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(shareDenom)))
}
