package bank

import "errors"

// Error kinds returned by contract operations. Every failure is reported
// through exactly one of these sentinels, possibly wrapped with call
// details; match with errors.Is.
var (
	// ErrUnauthorized is returned when the caller lacks the privilege
	// required by the method (owner-only methods).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPaused is returned when a transfer-class method is invoked
	// while the contract is paused.
	ErrPaused = errors.New("contract is paused")
	// ErrBlacklisted is returned when a party to a transfer-class
	// operation is present in the blacklist.
	ErrBlacklisted = errors.New("account is blacklisted")
	// ErrInsufficientBalance is returned when the debited account holds
	// less than the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientAllowance is returned by TransferFrom when the
	// spender's allowance does not cover the requested amount.
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	// ErrOverflow is returned when an addition would exceed the
	// representable amount range.
	ErrOverflow = errors.New("amount overflow")
	// ErrUnderflow is returned when a subtraction would produce a
	// negative amount, including negative amount arguments.
	ErrUnderflow = errors.New("amount underflow")
	// ErrInvalidTarget is returned for forbidden target accounts:
	// blacklisting the owner, transferring ownership to a blacklisted
	// or zero account.
	ErrInvalidTarget = errors.New("invalid target account")
)
