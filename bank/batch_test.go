package bank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchTransfer(t *testing.T) {
	c, owner := newContract(t)
	alice, bob, carol := acc(1), acc(2), acc(3)
	require.NoError(t, c.Mint(owner, alice, 100))
	c.Notifications()

	t.Run("duplicates accumulate independently", func(t *testing.T) {
		require.NoError(t, c.BatchTransfer(alice, []BatchEntry{
			{bob, 10},
			{carol, 20},
			{bob, 5},
		}))
		require.EqualValues(t, 65, c.BalanceOf(alice))
		require.EqualValues(t, 15, c.BalanceOf(bob))
		require.EqualValues(t, 20, c.BalanceOf(carol))
		requireSupplyInvariant(t, c)

		events := c.Notifications()
		require.Len(t, events, 3)
		require.Equal(t, TransferEvent{alice, bob, 10, events[0].(TransferEvent).Timestamp}, events[0])
		require.Equal(t, TransferEvent{alice, carol, 20, events[1].(TransferEvent).Timestamp}, events[1])
		require.Equal(t, TransferEvent{alice, bob, 5, events[2].(TransferEvent).Timestamp}, events[2])
	})

	t.Run("no partial application", func(t *testing.T) {
		err := c.BatchTransfer(alice, []BatchEntry{
			{bob, 10},
			{carol, 1_000_000},
		})
		require.ErrorIs(t, err, ErrInsufficientBalance)
		require.EqualValues(t, 65, c.BalanceOf(alice))
		require.EqualValues(t, 15, c.BalanceOf(bob))
		require.EqualValues(t, 20, c.BalanceOf(carol))
		require.Empty(t, c.Notifications())
	})

	t.Run("aggregate overflow", func(t *testing.T) {
		err := c.BatchTransfer(alice, []BatchEntry{
			{bob, math.MaxInt64},
			{carol, 1},
		})
		require.ErrorIs(t, err, ErrOverflow)
		require.EqualValues(t, 65, c.BalanceOf(alice))
	})

	t.Run("negative entry", func(t *testing.T) {
		err := c.BatchTransfer(alice, []BatchEntry{
			{bob, 10},
			{carol, -1},
		})
		require.ErrorIs(t, err, ErrUnderflow)
		require.EqualValues(t, 65, c.BalanceOf(alice))
	})

	t.Run("blacklisted recipient rejects the whole batch", func(t *testing.T) {
		require.NoError(t, c.BlacklistAdd(owner, carol))
		defer func() { require.NoError(t, c.BlacklistRemove(owner, carol)) }()
		c.Notifications()

		err := c.BatchTransfer(alice, []BatchEntry{
			{bob, 10},
			{carol, 10},
		})
		require.ErrorIs(t, err, ErrBlacklisted)
		require.EqualValues(t, 65, c.BalanceOf(alice))
		require.EqualValues(t, 15, c.BalanceOf(bob))
		require.Empty(t, c.Notifications())
	})

	t.Run("paused", func(t *testing.T) {
		require.NoError(t, c.Pause(owner))
		defer func() { require.NoError(t, c.Unpause(owner)) }()

		err := c.BatchTransfer(alice, []BatchEntry{{bob, 1}})
		require.ErrorIs(t, err, ErrPaused)
	})

	t.Run("empty batch succeeds", func(t *testing.T) {
		c.Notifications()
		require.NoError(t, c.BatchTransfer(alice, nil))
		require.EqualValues(t, 65, c.BalanceOf(alice))
		require.Empty(t, c.Notifications())
	})

	t.Run("caller among recipients", func(t *testing.T) {
		require.NoError(t, c.BatchTransfer(alice, []BatchEntry{
			{bob, 5},
			{alice, 10},
		}))
		require.EqualValues(t, 60, c.BalanceOf(alice))
		require.EqualValues(t, 20, c.BalanceOf(bob))
		requireSupplyInvariant(t, c)
	})

	t.Run("exact balance drains the caller", func(t *testing.T) {
		require.NoError(t, c.BatchTransfer(alice, []BatchEntry{{bob, 60}}))
		require.EqualValues(t, 0, c.BalanceOf(alice))
		require.NotContains(t, c.balances, alice)
		requireSupplyInvariant(t, c)
	})
}
