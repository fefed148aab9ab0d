package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	c, owner := newContract(t)
	alice, bob := acc(1), acc(2)

	ts := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return ts }

	require.NoError(t, c.Mint(owner, alice, 1000))
	require.NoError(t, c.Transfer(alice, bob, 300))
	require.NoError(t, c.Burn(bob, 100))

	events := c.Notifications()
	require.Equal(t, []Notification{
		MintEvent{To: alice, Amount: 1000, NewTotalSupply: 1000, Timestamp: ts},
		TransferEvent{From: alice, To: bob, Amount: 300, Timestamp: ts},
		BurnEvent{From: bob, Amount: 100, NewTotalSupply: 900, Timestamp: ts},
	}, events)

	t.Run("drain resets the pending list", func(t *testing.T) {
		require.Empty(t, c.Notifications())
	})

	t.Run("failed calls record nothing", func(t *testing.T) {
		require.Error(t, c.Transfer(alice, bob, 10_000))
		require.Error(t, c.Mint(alice, bob, 1))
		require.Empty(t, c.Notifications())
	})

	t.Run("administrative events", func(t *testing.T) {
		require.NoError(t, c.Pause(owner))
		require.NoError(t, c.Pause(owner)) // no-op, no event
		require.NoError(t, c.Unpause(owner))
		require.NoError(t, c.BlacklistAdd(owner, bob))
		require.NoError(t, c.BlacklistAdd(owner, bob)) // no-op, no event
		require.NoError(t, c.BlacklistRemove(owner, bob))
		require.NoError(t, c.TransferOwnership(owner, alice))

		var names []string
		for _, e := range c.Notifications() {
			names = append(names, e.Event())
		}
		require.Equal(t, []string{
			"Paused",
			"Unpaused",
			"BlacklistAdded",
			"BlacklistRemoved",
			"OwnershipTransferred",
		}, names)
	})

	t.Run("approval carries the resulting allowance", func(t *testing.T) {
		require.NoError(t, c.IncreaseAllowance(bob, alice, 70))
		require.NoError(t, c.IncreaseAllowance(bob, alice, 30))

		events := c.Notifications()
		require.Len(t, events, 2)
		require.EqualValues(t, 70, events[0].(ApprovalEvent).Amount)
		require.EqualValues(t, 100, events[1].(ApprovalEvent).Amount)
	})
}
