package bank

import (
	"fmt"
	"math"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

type (
	// Contract is the shared ledger state: account balances, total
	// supply, delegated spend allowances and administrative controls.
	// It is created once by the deploying boundary and owned by the
	// dispatcher for the lifetime of the process.
	//
	// Contract is not safe for concurrent use. The host processes one
	// call at a time; the dispatching boundary is responsible for
	// serializing invocations.
	Contract struct {
		owner      util.Uint160
		paused     bool
		blacklist  map[util.Uint160]struct{}
		balances   map[util.Uint160]int64
		allowances map[allowanceKey]int64
		supply     int64

		pending []Notification
		now     func() time.Time
	}

	allowanceKey struct {
		owner   util.Uint160
		spender util.Uint160
	}
)

// New creates the genesis contract state: the given owner, zero total
// supply, nothing paused or blacklisted.
func New(owner util.Uint160) (*Contract, error) {
	if owner == (util.Uint160{}) {
		return nil, fmt.Errorf("%w: zero owner account", ErrInvalidTarget)
	}

	return &Contract{
		owner:      owner,
		blacklist:  make(map[util.Uint160]struct{}),
		balances:   make(map[util.Uint160]int64),
		allowances: make(map[allowanceKey]int64),
		now:        time.Now,
	}, nil
}

// Mint increases the balance of to and the total supply by amount. Can
// be invoked only by the contract owner. Minting is allowed while the
// contract is paused so the owner can remediate emergencies.
func (c *Contract) Mint(caller, to util.Uint160, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireOwner(caller); err != nil {
		return err
	}

	newBalance, err := addChecked(c.balances[to], amount)
	if err != nil {
		return err
	}
	newSupply, err := addChecked(c.supply, amount)
	if err != nil {
		return err
	}

	c.setBalance(to, newBalance)
	c.supply = newSupply

	c.notify(MintEvent{
		To:             to,
		Amount:         amount,
		NewTotalSupply: newSupply,
		Timestamp:      c.now(),
	})
	return nil
}

// Burn decreases the caller's balance and the total supply by amount.
// Available to any account, paused or not.
func (c *Contract) Burn(caller util.Uint160, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	balance := c.balances[caller]
	if balance < amount {
		return fmt.Errorf("%w: have %d, burn %d", ErrInsufficientBalance, balance, amount)
	}

	c.setBalance(caller, balance-amount)
	c.supply -= amount

	c.notify(BurnEvent{
		From:           caller,
		Amount:         amount,
		NewTotalSupply: c.supply,
		Timestamp:      c.now(),
	})
	return nil
}

// Transfer moves amount from the caller to to. It is rejected while the
// contract is paused and when either party is blacklisted. A transfer
// to self passes the same checks, changes no balance and succeeds.
func (c *Contract) Transfer(caller, to util.Uint160, amount int64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := c.requireActive(); err != nil {
		return err
	}
	if err := c.requireNotBlacklisted(caller, to); err != nil {
		return err
	}

	balance := c.balances[caller]
	if balance < amount {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, balance, amount)
	}

	if caller != to {
		// While sum(balances) == supply holds the credit cannot
		// overflow, but it is validated before either side mutates.
		credit, err := addChecked(c.balances[to], amount)
		if err != nil {
			return err
		}
		c.setBalance(caller, balance-amount)
		c.setBalance(to, credit)
	}

	c.notify(TransferEvent{
		From:      caller,
		To:        to,
		Amount:    amount,
		Timestamp: c.now(),
	})
	return nil
}

// BalanceOf returns the balance of the account, zero for accounts the
// ledger has no entry for.
func (c *Contract) BalanceOf(account util.Uint160) int64 {
	return c.balances[account]
}

// TotalSupply returns the sum of all balances.
func (c *Contract) TotalSupply() int64 {
	return c.supply
}

// setBalance stores the balance, dropping zeroed entries so that
// absence from the mapping stays equivalent to a zero balance.
func (c *Contract) setBalance(account util.Uint160, balance int64) {
	if balance == 0 {
		delete(c.balances, account)
		return
	}
	c.balances[account] = balance
}

// checkAmount rejects negative amount arguments; the conceptual domain
// of balances and allowances is non-negative.
func checkAmount(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative amount %d", ErrUnderflow, amount)
	}
	return nil
}

func addChecked(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}
