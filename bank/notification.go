package bank

import (
	"time"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Notification describes a single state delta applied by a successful
// contract call. The contract records one notification per applied
// mutation; the dispatching boundary drains them with Notifications and
// returns them to the host together with the call result.
type Notification interface {
	// Event returns the notification name.
	Event() string
}

// TransferEvent is produced for every balance movement: Transfer,
// TransferFrom and each BatchTransfer credit.
type TransferEvent struct {
	From      util.Uint160
	To        util.Uint160
	Amount    int64
	Timestamp time.Time
}

// MintEvent is produced when the total supply is increased.
type MintEvent struct {
	To             util.Uint160
	Amount         int64
	NewTotalSupply int64
	Timestamp      time.Time
}

// BurnEvent is produced when the total supply is decreased.
type BurnEvent struct {
	From           util.Uint160
	Amount         int64
	NewTotalSupply int64
	Timestamp      time.Time
}

// ApprovalEvent is produced when an allowance is set or adjusted. Amount
// is the resulting allowance, not the delta.
type ApprovalEvent struct {
	Owner     util.Uint160
	Spender   util.Uint160
	Amount    int64
	Timestamp time.Time
}

// PauseEvent is produced when the paused flag actually changes state.
type PauseEvent struct {
	Paused    bool
	Timestamp time.Time
}

// BlacklistEvent is produced when an account is actually added to or
// removed from the blacklist.
type BlacklistEvent struct {
	Account   util.Uint160
	Added     bool
	Timestamp time.Time
}

// OwnershipEvent is produced when contract ownership changes hands.
type OwnershipEvent struct {
	PreviousOwner util.Uint160
	NewOwner      util.Uint160
	Timestamp     time.Time
}

// Event implements Notification.
func (TransferEvent) Event() string { return "Transfer" }

// Event implements Notification.
func (MintEvent) Event() string { return "Mint" }

// Event implements Notification.
func (BurnEvent) Event() string { return "Burn" }

// Event implements Notification.
func (ApprovalEvent) Event() string { return "Approval" }

// Event implements Notification.
func (e PauseEvent) Event() string {
	if e.Paused {
		return "Paused"
	}
	return "Unpaused"
}

// Event implements Notification.
func (e BlacklistEvent) Event() string {
	if e.Added {
		return "BlacklistAdded"
	}
	return "BlacklistRemoved"
}

// Event implements Notification.
func (OwnershipEvent) Event() string { return "OwnershipTransferred" }

func (c *Contract) notify(n Notification) {
	c.pending = append(c.pending, n)
}

// Notifications returns notifications recorded by mutations applied
// since the previous drain and resets the pending list. Failed calls
// record nothing, so after an error the list is unchanged.
func (c *Contract) Notifications() []Notification {
	ns := c.pending
	c.pending = nil
	return ns
}
