package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Vault holds the configuration of a single pooled-asset vault. The pool
// address is derived from the share denom, so a vault's address can always be
// recomputed from its configuration.
type Vault struct {
	// Address is the pool account that custodies deposited assets.
	Address sdk.AccAddress
	// Admin may pause the vault and toggle deposits and withdrawals.
	Admin sdk.AccAddress
	// ShareDenom is the denom minted against deposits.
	ShareDenom string
	// UnderlyingAsset is the single denom the vault accepts and pays out.
	UnderlyingAsset string
	// Paused halts all user operations when set.
	Paused bool
	// DepositsEnabled gates Deposit and Mint.
	DepositsEnabled bool
	// WithdrawalsEnabled gates Withdraw and Redeem.
	WithdrawalsEnabled bool
}

// NewVault creates a vault with deposits and withdrawals enabled.
func NewVault(admin sdk.AccAddress, shareDenom string, underlyingAsset string) *Vault {
	return &Vault{
		Address:            GetVaultAddress(shareDenom),
		Admin:              admin,
		ShareDenom:         shareDenom,
		UnderlyingAsset:    underlyingAsset,
		DepositsEnabled:    true,
		WithdrawalsEnabled: true,
	}
}

// Clone makes a Vault instance copy.
func (v Vault) Clone() *Vault {
	c := v
	c.Address = append(sdk.AccAddress(nil), v.Address...)
	c.Admin = append(sdk.AccAddress(nil), v.Admin...)
	return &c
}

// Validate performs basic validation on the vault fields.
func (v Vault) Validate() error {
	if v.Admin.Empty() {
		return fmt.Errorf("invalid admin address: empty address string is not allowed")
	}
	if err := sdk.ValidateDenom(v.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if err := sdk.ValidateDenom(v.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset denom: %s", v.UnderlyingAsset)
	}
	if v.ShareDenom == v.UnderlyingAsset {
		return fmt.Errorf("share denom and underlying asset must differ, both are %s", v.ShareDenom)
	}
	if !v.Address.Equals(GetVaultAddress(v.ShareDenom)) {
		return fmt.Errorf("vault address does not match the address derived from share denom %s", v.ShareDenom)
	}
	return nil
}

// ValidateUnderlyingAsset checks if the given asset's denomination is the one the vault accepts.
func (v Vault) ValidateUnderlyingAsset(asset sdk.Coin) error {
	if asset.Denom != v.UnderlyingAsset {
		return fmt.Errorf("%s asset denom not supported for vault, expected %s", asset.Denom, v.UnderlyingAsset)
	}
	return nil
}

// ValidateShares checks if the given coin carries the vault's share denom.
func (v Vault) ValidateShares(shares sdk.Coin) error {
	if shares.Denom != v.ShareDenom {
		return fmt.Errorf("%s share denom not supported for vault, expected %s", shares.Denom, v.ShareDenom)
	}
	return nil
}

// ValidateCoin checks that a coin carries a valid denom and a non-nil,
// non-negative amount. The zero Coin value has a nil amount, so Coin.Validate
// alone is not safe to call on caller-supplied values.
func ValidateCoin(coin sdk.Coin) error {
	if coin.Amount.IsNil() {
		return fmt.Errorf("invalid coin amount: <nil>")
	}
	return coin.Validate()
}
