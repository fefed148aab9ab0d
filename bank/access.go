package bank

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// requireOwner is the guard for owner-only methods.
func (c *Contract) requireOwner(caller util.Uint160) error {
	if caller != c.owner {
		return fmt.Errorf("%w: caller is not the contract owner", ErrUnauthorized)
	}
	return nil
}

// requireActive is the guard for transfer-class methods, rejected while
// the contract is paused.
func (c *Contract) requireActive() error {
	if c.paused {
		return ErrPaused
	}
	return nil
}

// requireNotBlacklisted is the guard rejecting blacklisted parties of a
// transfer-class method.
func (c *Contract) requireNotBlacklisted(accounts ...util.Uint160) error {
	for _, acc := range accounts {
		if _, ok := c.blacklist[acc]; ok {
			return fmt.Errorf("%w: %s", ErrBlacklisted, acc.StringLE())
		}
	}
	return nil
}

// Pause stops Transfer, TransferFrom and BatchTransfer until Unpause.
// Can be invoked only by the contract owner. Pausing an already paused
// contract succeeds and changes nothing.
func (c *Contract) Pause(caller util.Uint160) error {
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if c.paused {
		return nil
	}

	c.paused = true
	c.notify(PauseEvent{Paused: true, Timestamp: c.now()})
	return nil
}

// Unpause lifts a pause. Can be invoked only by the contract owner and
// is idempotent like Pause.
func (c *Contract) Unpause(caller util.Uint160) error {
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if !c.paused {
		return nil
	}

	c.paused = false
	c.notify(PauseEvent{Paused: false, Timestamp: c.now()})
	return nil
}

// BlacklistAdd forbids the target account from sending or receiving
// funds. Can be invoked only by the contract owner; the owner may never
// blacklist themselves. Adding a present member changes nothing.
func (c *Contract) BlacklistAdd(caller, target util.Uint160) error {
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if target == c.owner {
		return fmt.Errorf("%w: owner cannot be blacklisted", ErrInvalidTarget)
	}
	if _, ok := c.blacklist[target]; ok {
		return nil
	}

	c.blacklist[target] = struct{}{}
	c.notify(BlacklistEvent{Account: target, Added: true, Timestamp: c.now()})
	return nil
}

// BlacklistRemove removes the target account from the blacklist if
// present. Can be invoked only by the contract owner.
func (c *Contract) BlacklistRemove(caller, target util.Uint160) error {
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if _, ok := c.blacklist[target]; !ok {
		return nil
	}

	delete(c.blacklist, target)
	c.notify(BlacklistEvent{Account: target, Added: false, Timestamp: c.now()})
	return nil
}

// TransferOwnership hands the contract over to newOwner in a single
// step. Can be invoked only by the current owner; a blacklisted or zero
// account cannot become owner.
func (c *Contract) TransferOwnership(caller, newOwner util.Uint160) error {
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if newOwner == (util.Uint160{}) {
		return fmt.Errorf("%w: zero owner account", ErrInvalidTarget)
	}
	if _, ok := c.blacklist[newOwner]; ok {
		return fmt.Errorf("%w: new owner is blacklisted", ErrInvalidTarget)
	}

	prev := c.owner
	c.owner = newOwner
	c.notify(OwnershipEvent{PreviousOwner: prev, NewOwner: newOwner, Timestamp: c.now()})
	return nil
}

// Owner returns the current contract owner.
func (c *Contract) Owner() util.Uint160 {
	return c.owner
}

// IsPaused reports whether transfer-class methods are currently
// rejected.
func (c *Contract) IsPaused() bool {
	return c.paused
}

// IsBlacklisted reports whether the account is on the blacklist.
func (c *Contract) IsBlacklisted(account util.Uint160) bool {
	_, ok := c.blacklist[account]
	return ok
}
