package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest      = errors.Register(ModuleName, 2, "invalid request")
	ErrLimitExceeded       = errors.Register(ModuleName, 3, "operation exceeds limit")
	ErrAllowanceExceeded   = errors.Register(ModuleName, 4, "insufficient allowance")
	ErrInsufficientBalance = errors.Register(ModuleName, 5, "insufficient balance")
	ErrTransferFailure     = errors.Register(ModuleName, 6, "asset transfer failed")
	ErrArithmeticOverflow  = errors.Register(ModuleName, 7, "arithmetic overflow")
	ErrUnauthorized        = errors.Register(ModuleName, 8, "unauthorized")
	ErrVaultPaused         = errors.Register(ModuleName, 9, "vault is paused")
	ErrDepositsDisabled    = errors.Register(ModuleName, 10, "deposits are disabled")
	ErrWithdrawalsDisabled = errors.Register(ModuleName, 11, "withdrawals are disabled")
)
