package bank

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Approve authorizes spender to move up to amount out of the caller's
// balance, overwriting any previous allowance. It only records intent
// and moves no funds, so it succeeds regardless of pause and blacklist
// state.
func (c *Contract) Approve(caller, spender util.Uint160, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	c.setAllowance(caller, spender, amount)
	c.notify(ApprovalEvent{
		Owner:     caller,
		Spender:   spender,
		Amount:    amount,
		Timestamp: c.now(),
	})
	return nil
}

// IncreaseAllowance raises the spender's allowance by delta.
func (c *Contract) IncreaseAllowance(caller, spender util.Uint160, delta int64) error {
	if err := checkAmount(delta); err != nil {
		return err
	}

	newAmount, err := addChecked(c.allowances[allowanceKey{caller, spender}], delta)
	if err != nil {
		return err
	}

	c.setAllowance(caller, spender, newAmount)
	c.notify(ApprovalEvent{
		Owner:     caller,
		Spender:   spender,
		Amount:    newAmount,
		Timestamp: c.now(),
	})
	return nil
}

// DecreaseAllowance lowers the spender's allowance by delta. A decrease
// beyond the stored allowance is rejected, not clamped to zero.
func (c *Contract) DecreaseAllowance(caller, spender util.Uint160, delta int64) error {
	if err := checkAmount(delta); err != nil {
		return err
	}

	current := c.allowances[allowanceKey{caller, spender}]
	if current < delta {
		return fmt.Errorf("%w: allowance %d, decrease %d", ErrUnderflow, current, delta)
	}

	c.setAllowance(caller, spender, current-delta)
	c.notify(ApprovalEvent{
		Owner:     caller,
		Spender:   spender,
		Amount:    current - delta,
		Timestamp: c.now(),
	})
	return nil
}

// TransferFrom moves amount from from to to with the caller acting as
// spender of from's allowance. It is rejected while the contract is
// paused and when from, to or the caller is blacklisted. On success the
// allowance decrement and the balance movement apply together.
func (c *Contract) TransferFrom(caller, from, to util.Uint160, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireActive(); err != nil {
		return err
	}
	if err := c.requireNotBlacklisted(from, to, caller); err != nil {
		return err
	}

	allowed := c.allowances[allowanceKey{from, caller}]
	if allowed < amount {
		return fmt.Errorf("%w: allowed %d, need %d", ErrInsufficientAllowance, allowed, amount)
	}

	balance := c.balances[from]
	if balance < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, balance, amount)
	}

	if from != to {
		credit, err := addChecked(c.balances[to], amount)
		if err != nil {
			return err
		}
		c.setBalance(from, balance-amount)
		c.setBalance(to, credit)
	}
	c.setAllowance(from, caller, allowed-amount)

	c.notify(TransferEvent{
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: c.now(),
	})
	return nil
}

// Allowance returns the amount spender is currently authorized to move
// out of owner's balance, zero when nothing was approved.
func (c *Contract) Allowance(owner, spender util.Uint160) int64 {
	return c.allowances[allowanceKey{owner, spender}]
}

// setAllowance stores the allowance, dropping zeroed entries the same
// way setBalance does for balances.
func (c *Contract) setAllowance(owner, spender util.Uint160, amount int64) {
	k := allowanceKey{owner, spender}
	if amount == 0 {
		delete(c.allowances, k)
		return
	}
	c.allowances[k] = amount
}
