package types

import (
	"strconv"

	"cosmossdk.io/core/event"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDeposit           = "vault.deposit"
	EventTypeWithdraw          = "vault.withdraw"
	EventTypeToggleDeposits    = "vault.toggle_deposits"
	EventTypeToggleWithdrawals = "vault.toggle_withdrawals"
	EventTypeVaultPaused       = "vault.paused"
	EventTypeVaultUnpaused     = "vault.unpaused"
)

// Event is a typed notification emitted by the keeper after an operation has
// been committed. Attributes returns the flattened key/value form handed to
// the event service.
type Event interface {
	Type() string
	Attributes() []event.Attribute
}

// EventDeposit is emitted when assets enter the pool through Deposit or Mint.
type EventDeposit struct {
	VaultAddress string
	Caller       string
	Owner        string
	Assets       string
	Shares       string
}

// NewEventDeposit creates a new EventDeposit event.
func NewEventDeposit(vaultAddress string, caller, owner sdk.AccAddress, assets, shares sdk.Coin) *EventDeposit {
	return &EventDeposit{
		VaultAddress: vaultAddress,
		Caller:       caller.String(),
		Owner:        owner.String(),
		Assets:       assets.String(),
		Shares:       shares.String(),
	}
}

func (e *EventDeposit) Type() string { return EventTypeDeposit }

func (e *EventDeposit) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "caller", Value: e.Caller},
		{Key: "owner", Value: e.Owner},
		{Key: "assets", Value: e.Assets},
		{Key: "shares", Value: e.Shares},
	}
}

// EventWithdraw is emitted when assets leave the pool through Withdraw or Redeem.
type EventWithdraw struct {
	VaultAddress string
	Caller       string
	Receiver     string
	Owner        string
	Assets       string
	Shares       string
}

// NewEventWithdraw creates a new EventWithdraw event.
func NewEventWithdraw(vaultAddress string, caller, receiver, owner sdk.AccAddress, assets, shares sdk.Coin) *EventWithdraw {
	return &EventWithdraw{
		VaultAddress: vaultAddress,
		Caller:       caller.String(),
		Receiver:     receiver.String(),
		Owner:        owner.String(),
		Assets:       assets.String(),
		Shares:       shares.String(),
	}
}

func (e *EventWithdraw) Type() string { return EventTypeWithdraw }

func (e *EventWithdraw) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "caller", Value: e.Caller},
		{Key: "receiver", Value: e.Receiver},
		{Key: "owner", Value: e.Owner},
		{Key: "assets", Value: e.Assets},
		{Key: "shares", Value: e.Shares},
	}
}

// EventToggleDeposits is emitted when the admin enables or disables deposits.
type EventToggleDeposits struct {
	VaultAddress string
	Admin        string
	Enabled      bool
}

// NewEventToggleDeposits creates a new EventToggleDeposits event.
func NewEventToggleDeposits(vaultAddress string, admin sdk.AccAddress, enabled bool) *EventToggleDeposits {
	return &EventToggleDeposits{
		VaultAddress: vaultAddress,
		Admin:        admin.String(),
		Enabled:      enabled,
	}
}

func (e *EventToggleDeposits) Type() string { return EventTypeToggleDeposits }

func (e *EventToggleDeposits) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "admin", Value: e.Admin},
		{Key: "enabled", Value: strconv.FormatBool(e.Enabled)},
	}
}

// EventToggleWithdrawals is emitted when the admin enables or disables withdrawals.
type EventToggleWithdrawals struct {
	VaultAddress string
	Admin        string
	Enabled      bool
}

// NewEventToggleWithdrawals creates a new EventToggleWithdrawals event.
func NewEventToggleWithdrawals(vaultAddress string, admin sdk.AccAddress, enabled bool) *EventToggleWithdrawals {
	return &EventToggleWithdrawals{
		VaultAddress: vaultAddress,
		Admin:        admin.String(),
		Enabled:      enabled,
	}
}

func (e *EventToggleWithdrawals) Type() string { return EventTypeToggleWithdrawals }

func (e *EventToggleWithdrawals) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "admin", Value: e.Admin},
		{Key: "enabled", Value: strconv.FormatBool(e.Enabled)},
	}
}

// EventVaultPaused is emitted when the admin pauses the vault.
type EventVaultPaused struct {
	VaultAddress string
	Authority    string
	TotalAssets  string
}

// NewEventVaultPaused creates a new EventVaultPaused event.
func NewEventVaultPaused(vaultAddress string, authority sdk.AccAddress, totalAssets sdk.Coin) *EventVaultPaused {
	return &EventVaultPaused{
		VaultAddress: vaultAddress,
		Authority:    authority.String(),
		TotalAssets:  totalAssets.String(),
	}
}

func (e *EventVaultPaused) Type() string { return EventTypeVaultPaused }

func (e *EventVaultPaused) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "authority", Value: e.Authority},
		{Key: "total_assets", Value: e.TotalAssets},
	}
}

// EventVaultUnpaused is emitted when the admin unpauses the vault.
type EventVaultUnpaused struct {
	VaultAddress string
	Authority    string
	TotalAssets  string
}

// NewEventVaultUnpaused creates a new EventVaultUnpaused event.
func NewEventVaultUnpaused(vaultAddress string, authority sdk.AccAddress, totalAssets sdk.Coin) *EventVaultUnpaused {
	return &EventVaultUnpaused{
		VaultAddress: vaultAddress,
		Authority:    authority.String(),
		TotalAssets:  totalAssets.String(),
	}
}

func (e *EventVaultUnpaused) Type() string { return EventTypeVaultUnpaused }

func (e *EventVaultUnpaused) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: "vault_address", Value: e.VaultAddress},
		{Key: "authority", Value: e.Authority},
		{Key: "total_assets", Value: e.TotalAssets},
	}
}
