package vault

import (
	"context"
	"fmt"

	"github.com/jmakwana0x1/ERC4626Vault/bank"
)

// GenesisState holds a full snapshot of a vault and its ledger.
type GenesisState struct {
	Paused             bool `json:"paused"`
	DepositsEnabled    bool `json:"deposits_enabled"`
	WithdrawalsEnabled bool `json:"withdrawals_enabled"`
	// Bank carries balances and allowances for shares and assets alike.
	Bank bank.GenesisState `json:"bank"`
}

// DefaultGenesisState returns the state of a fresh vault: unpaused, open in
// both directions, with an empty ledger.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{DepositsEnabled: true, WithdrawalsEnabled: true}
}

// Validate performs basic validation of the genesis fields.
func (gs GenesisState) Validate() error {
	return gs.Bank.Validate()
}

// InitGenesis initializes vault and bank state from a provided genesis state.
// It must run against a freshly constructed App.
func (a *App) InitGenesis(ctx context.Context, gs *GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}
	a.Vault.Paused = gs.Paused
	a.Vault.DepositsEnabled = gs.DepositsEnabled
	a.Vault.WithdrawalsEnabled = gs.WithdrawalsEnabled
	return a.Bank.InitGenesis(ctx, &gs.Bank)
}

// ExportGenesis returns a snapshot that InitGenesis can restore.
func (a *App) ExportGenesis(ctx context.Context) (*GenesisState, error) {
	bankState, err := a.Bank.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return &GenesisState{
		Paused:             a.Vault.Paused,
		DepositsEnabled:    a.Vault.DepositsEnabled,
		WithdrawalsEnabled: a.Vault.WithdrawalsEnabled,
		Bank:               *bankState,
	}, nil
}
