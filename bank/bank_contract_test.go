package bank

import (
	"math"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func acc(b byte) util.Uint160 {
	return util.Uint160{b}
}

func newContract(t *testing.T) (*Contract, util.Uint160) {
	owner := acc(0xff)
	c, err := New(owner)
	require.NoError(t, err)
	return c, owner
}

// requireSupplyInvariant checks that the sum of all stored balances
// equals the tracked total supply.
func requireSupplyInvariant(t *testing.T, c *Contract) {
	var sum int64
	for _, b := range c.balances {
		sum += b
	}
	require.Equal(t, c.supply, sum)
}

func TestNew(t *testing.T) {
	_, err := New(util.Uint160{})
	require.ErrorIs(t, err, ErrInvalidTarget)

	c, owner := newContract(t)
	require.Equal(t, owner, c.Owner())
	require.EqualValues(t, 0, c.TotalSupply())
	require.False(t, c.IsPaused())
}

func TestMint(t *testing.T) {
	c, owner := newContract(t)
	alice := acc(1)

	t.Run("unauthorized", func(t *testing.T) {
		require.ErrorIs(t, c.Mint(alice, alice, 100), ErrUnauthorized)
		require.EqualValues(t, 0, c.TotalSupply())
	})

	t.Run("negative amount", func(t *testing.T) {
		require.ErrorIs(t, c.Mint(owner, alice, -1), ErrUnderflow)
	})

	require.NoError(t, c.Mint(owner, alice, 1000))
	require.EqualValues(t, 1000, c.BalanceOf(alice))
	require.EqualValues(t, 1000, c.TotalSupply())
	requireSupplyInvariant(t, c)

	t.Run("supply overflow", func(t *testing.T) {
		err := c.Mint(owner, acc(2), math.MaxInt64)
		require.ErrorIs(t, err, ErrOverflow)
		require.EqualValues(t, 0, c.BalanceOf(acc(2)))
		require.EqualValues(t, 1000, c.TotalSupply())
		requireSupplyInvariant(t, c)
	})

	t.Run("allowed while paused", func(t *testing.T) {
		require.NoError(t, c.Pause(owner))
		require.NoError(t, c.Mint(owner, alice, 1))
		require.EqualValues(t, 1001, c.BalanceOf(alice))
		require.NoError(t, c.Unpause(owner))
	})
}

func TestBurn(t *testing.T) {
	c, owner := newContract(t)
	alice := acc(1)
	require.NoError(t, c.Mint(owner, alice, 100))

	t.Run("insufficient balance", func(t *testing.T) {
		require.ErrorIs(t, c.Burn(alice, 200), ErrInsufficientBalance)
		require.EqualValues(t, 100, c.BalanceOf(alice))
		require.EqualValues(t, 100, c.TotalSupply())
	})

	t.Run("negative amount", func(t *testing.T) {
		require.ErrorIs(t, c.Burn(alice, -5), ErrUnderflow)
	})

	require.NoError(t, c.Burn(alice, 40))
	require.EqualValues(t, 60, c.BalanceOf(alice))
	require.EqualValues(t, 60, c.TotalSupply())
	requireSupplyInvariant(t, c)

	t.Run("allowed while paused", func(t *testing.T) {
		require.NoError(t, c.Pause(owner))
		require.NoError(t, c.Burn(alice, 10))
		require.EqualValues(t, 50, c.BalanceOf(alice))
		require.NoError(t, c.Unpause(owner))
	})

	t.Run("zeroed entry is dropped", func(t *testing.T) {
		require.NoError(t, c.Burn(alice, 50))
		require.NotContains(t, c.balances, alice)
		require.EqualValues(t, 0, c.BalanceOf(alice))
		requireSupplyInvariant(t, c)
	})
}

func TestTransfer(t *testing.T) {
	c, owner := newContract(t)
	alice, bob := acc(1), acc(2)
	require.NoError(t, c.Mint(owner, alice, 50))

	t.Run("insufficient balance", func(t *testing.T) {
		require.ErrorIs(t, c.Transfer(alice, bob, 51), ErrInsufficientBalance)
		require.EqualValues(t, 50, c.BalanceOf(alice))
		require.EqualValues(t, 0, c.BalanceOf(bob))
	})

	t.Run("negative amount", func(t *testing.T) {
		require.ErrorIs(t, c.Transfer(alice, bob, -1), ErrUnderflow)
	})

	require.NoError(t, c.Transfer(alice, bob, 20))
	require.EqualValues(t, 30, c.BalanceOf(alice))
	require.EqualValues(t, 20, c.BalanceOf(bob))
	requireSupplyInvariant(t, c)

	t.Run("self transfer is a no-op success", func(t *testing.T) {
		require.NoError(t, c.Transfer(alice, alice, 30))
		require.EqualValues(t, 30, c.BalanceOf(alice))
		requireSupplyInvariant(t, c)
	})

	t.Run("self transfer still checks balance", func(t *testing.T) {
		require.ErrorIs(t, c.Transfer(alice, alice, 31), ErrInsufficientBalance)
	})

	t.Run("full transfer drops the entry", func(t *testing.T) {
		require.NoError(t, c.Transfer(alice, bob, 30))
		require.NotContains(t, c.balances, alice)
		require.EqualValues(t, 50, c.BalanceOf(bob))
		requireSupplyInvariant(t, c)
	})
}

func TestSupplyInvariantAcrossOperations(t *testing.T) {
	c, owner := newContract(t)
	alice, bob, carol := acc(1), acc(2), acc(3)

	require.NoError(t, c.Mint(owner, alice, 1000))
	require.NoError(t, c.Transfer(alice, bob, 300))
	require.NoError(t, c.Approve(alice, bob, 200))
	require.NoError(t, c.TransferFrom(bob, alice, carol, 150))
	require.NoError(t, c.Burn(bob, 100))
	require.NoError(t, c.BatchTransfer(alice, []BatchEntry{{bob, 10}, {carol, 20}}))

	require.EqualValues(t, 900, c.TotalSupply())
	requireSupplyInvariant(t, c)
}
