package vault

import (
	"cosmossdk.io/log"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/jmakwana0x1/ERC4626Vault/bank"
	"github.com/jmakwana0x1/ERC4626Vault/events"
	"github.com/jmakwana0x1/ERC4626Vault/keeper"
	"github.com/jmakwana0x1/ERC4626Vault/store"
	"github.com/jmakwana0x1/ERC4626Vault/types"
)

var _ types.BranchService = (*store.Service)(nil)

// Config collects everything needed to stand up a vault.
type Config struct {
	// Admin administers the vault. Required.
	Admin sdk.AccAddress
	// ShareDenom is the denom minted against deposits. Required.
	ShareDenom string
	// UnderlyingAsset is the denom the vault accepts and pays out. Required.
	UnderlyingAsset string
	// DB backs the state store. Defaults to an in-memory database.
	DB dbm.DB
	// Logger receives keeper and bank logging. Defaults to a no-op logger.
	Logger log.Logger
}

// App bundles a wired vault: the keeper plus the concrete collaborators it
// runs against. The bank serves as both the share ledger and the asset
// transfer channel, and the store service doubles as the branch service.
type App struct {
	Vault    *types.Vault
	Keeper   *keeper.Keeper
	Bank     *bank.Keeper
	Store    *store.Service
	Recorder *events.Recorder
}

// New wires a vault from the given config.
func New(cfg Config) (*App, error) {
	v := types.NewVault(cfg.Admin, cfg.ShareDenom, cfg.UnderlyingAsset)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	db := cfg.DB
	if db == nil {
		db = dbm.NewMemDB()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	svc := store.NewService(db)
	bk := bank.NewKeeper(svc, logger)
	rec := events.NewRecorder()
	k := keeper.NewKeeper(v, bk, bk, svc, rec, logger)

	return &App{
		Vault:    v,
		Keeper:   k,
		Bank:     bk,
		Store:    svc,
		Recorder: rec,
	}, nil
}
