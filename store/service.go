package store

import (
	"context"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"

	dbm "github.com/cosmos/cosmos-db"
)

var (
	_ corestore.KVStoreService = (*Service)(nil)
	_ corestore.KVStore        = kvStoreAdapter{}
)

// contextKey carries the active branch for a context chain.
type contextKey struct{}

// Service is a single-namespace KVStoreService backed by a cosmos-db
// database. Execute branches the active store through a cache layer and
// binds the branch into the context, so collections opened via OpenKVStore
// inside the callback read and write the branch. The branch is written back
// only when the callback returns nil.
type Service struct {
	base storetypes.KVStore
}

// NewService creates a store service over the given database.
func NewService(db dbm.DB) *Service {
	return &Service{base: dbadapter.Store{DB: db}}
}

// NewMemService creates a store service over a fresh in-memory database.
func NewMemService() *Service {
	return NewService(dbm.NewMemDB())
}

// OpenKVStore implements store.KVStoreService. It returns the branch bound
// into ctx by Execute, or the base store outside of any branch.
func (s *Service) OpenKVStore(ctx context.Context) corestore.KVStore {
	return kvStoreAdapter{s.stateFor(ctx)}
}

// Execute runs fn against a branched store and commits the branch if and
// only if fn returns nil. Reentrant calls branch the current branch, so
// inner work observes outer writes and still rolls back independently.
func (s *Service) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	branch := cachekv.NewStore(s.stateFor(ctx))
	if err := fn(context.WithValue(ctx, contextKey{}, branch)); err != nil {
		return err
	}
	branch.Write()
	return nil
}

func (s *Service) stateFor(ctx context.Context) storetypes.KVStore {
	if branch, ok := ctx.Value(contextKey{}).(storetypes.KVStore); ok {
		return branch
	}
	return s.base
}

// kvStoreAdapter bridges a store/types KVStore to the core store interface
// that collections operates on.
type kvStoreAdapter struct {
	store storetypes.KVStore
}

func (a kvStoreAdapter) Get(key []byte) ([]byte, error) { return a.store.Get(key), nil }

func (a kvStoreAdapter) Has(key []byte) (bool, error) { return a.store.Has(key), nil }

func (a kvStoreAdapter) Set(key, value []byte) error { a.store.Set(key, value); return nil }

func (a kvStoreAdapter) Delete(key []byte) error { a.store.Delete(key); return nil }

func (a kvStoreAdapter) Iterator(start, end []byte) (corestore.Iterator, error) {
	return a.store.Iterator(start, end), nil
}

func (a kvStoreAdapter) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return a.store.ReverseIterator(start, end), nil
}
