package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/event"
	"cosmossdk.io/log"

	"github.com/jmakwana0x1/ERC4626Vault/types"
)

// Keeper wires the vault's accounting logic to its collaborators. Share
// totals live in the ledger and asset balances live in the bank; the keeper
// persists nothing itself, so the external systems can never drift from a
// cached copy here.
type Keeper struct {
	vault        *types.Vault
	ledger       types.ShareLedger
	bank         types.BankKeeper
	branch       types.BranchService
	eventService event.Service
	logger       log.Logger
}

// NewKeeper returns a keeper for a single vault. It panics when the vault
// configuration is invalid or a collaborator is missing, since the keeper is
// unusable in either case.
func NewKeeper(
	vault *types.Vault,
	ledger types.ShareLedger,
	bank types.BankKeeper,
	branch types.BranchService,
	eventService event.Service,
	logger log.Logger,
) *Keeper {
	if vault == nil {
		panic("vault configuration is required")
	}
	if err := vault.Validate(); err != nil {
		panic(fmt.Sprintf("invalid vault configuration: %s", err))
	}
	if ledger == nil || bank == nil || branch == nil || eventService == nil {
		panic("vault keeper requires a share ledger, a bank keeper, a branch service, and an event service")
	}
	return &Keeper{
		vault:        vault,
		ledger:       ledger,
		bank:         bank,
		branch:       branch,
		eventService: eventService,
		logger:       logger.With("module", "x/"+types.ModuleName),
	}
}

// Vault returns the vault configuration.
func (k *Keeper) Vault() *types.Vault {
	return k.vault
}

// emitEvent hands a typed event to the event service. Emission failures are
// logged and swallowed, a notification must not undo a committed operation.
func (k *Keeper) emitEvent(ctx context.Context, ev types.Event) {
	if err := k.eventService.EventManager(ctx).EmitKV(ev.Type(), ev.Attributes()...); err != nil {
		k.logger.Error("failed to emit event", "type", ev.Type(), "err", err)
	}
}
