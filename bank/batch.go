package bank

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// BatchEntry is a single recipient of a BatchTransfer: credit To by
// Amount.
type BatchEntry struct {
	To     util.Uint160
	Amount int64
}

// BatchTransfer moves funds from the caller to every recipient in the
// given order as one all-or-nothing unit. Validation runs first and
// touches nothing: pause state, blacklist membership of the caller and
// every recipient, aggregate amount overflow and the caller's balance
// against the aggregate. Only when every check passes are the balances
// mutated: one debit of the aggregate, then the credits in order.
// Duplicate recipients are credited independently.
func (c *Contract) BatchTransfer(caller util.Uint160, recipients []BatchEntry) error {
	// Phase 1: validation, no mutation.
	if err := c.requireActive(); err != nil {
		return err
	}
	if err := c.requireNotBlacklisted(caller); err != nil {
		return err
	}

	var aggregate int64
	for i, e := range recipients {
		if err := checkAmount(e.Amount); err != nil {
			return fmt.Errorf("recipient #%d: %w", i, err)
		}
		if err := c.requireNotBlacklisted(e.To); err != nil {
			return fmt.Errorf("recipient #%d: %w", i, err)
		}

		var err error
		aggregate, err = addChecked(aggregate, e.Amount)
		if err != nil {
			return err
		}
	}

	balance := c.balances[caller]
	if balance < aggregate {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, balance, aggregate)
	}

	// Phase 2: apply, infallible. The debit happens once, before any
	// credit, so the sum of balances never exceeds the total supply and
	// no credit can overflow.
	c.setBalance(caller, balance-aggregate)
	for _, e := range recipients {
		c.setBalance(e.To, c.balances[e.To]+e.Amount)
		c.notify(TransferEvent{
			From:      caller,
			To:        e.To,
			Amount:    e.Amount,
			Timestamp: c.now(),
		})
	}
	return nil
}
