// Package bank contains typed wrappers for the bank contract methods
// exposed through a dispatcher. ContractReader covers the safe query
// methods; Contract additionally binds a caller account and covers the
// state-changing ones.
package bank

import (
	"fmt"

	corebank "github.com/nspcc-dev/bank-contract/bank"
	"github.com/nspcc-dev/bank-contract/dispatch"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Invoker is used by ContractReader and Contract to execute calls. It
// is satisfied by *dispatch.Dispatcher.
type Invoker interface {
	Invoke(caller util.Uint160, method string, args ...any) (*dispatch.Result, error)
}

// ContractReader implements the safe contract methods. Queries carry no
// caller identity, so an anonymous zero account is used.
type ContractReader struct {
	invoker Invoker
}

// Contract implements all contract methods on behalf of one account.
type Contract struct {
	ContractReader
	invoker Invoker
	account util.Uint160
}

// NewReader creates an instance of ContractReader using the given
// Invoker.
func NewReader(invoker Invoker) *ContractReader {
	return &ContractReader{invoker: invoker}
}

// New creates an instance of Contract acting as the given account.
func New(invoker Invoker, account util.Uint160) *Contract {
	return &Contract{
		ContractReader: ContractReader{invoker: invoker},
		invoker:        invoker,
		account:        account,
	}
}

// BalanceOf invokes the balance_of method of the contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (int64, error) {
	return unwrapInt64(c.invoker.Invoke(util.Uint160{}, "balance_of", account))
}

// Allowance invokes the allowance method of the contract.
func (c *ContractReader) Allowance(owner, spender util.Uint160) (int64, error) {
	return unwrapInt64(c.invoker.Invoke(util.Uint160{}, "allowance", owner, spender))
}

// TotalSupply invokes the total_supply method of the contract.
func (c *ContractReader) TotalSupply() (int64, error) {
	return unwrapInt64(c.invoker.Invoke(util.Uint160{}, "total_supply"))
}

// IsPaused invokes the is_paused method of the contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrapBool(c.invoker.Invoke(util.Uint160{}, "is_paused"))
}

// IsBlacklisted invokes the is_blacklisted method of the contract.
func (c *ContractReader) IsBlacklisted(account util.Uint160) (bool, error) {
	return unwrapBool(c.invoker.Invoke(util.Uint160{}, "is_blacklisted", account))
}

// Owner invokes the owner method of the contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrapUint160(c.invoker.Invoke(util.Uint160{}, "owner"))
}

// Mint invokes the mint method of the contract.
func (c *Contract) Mint(to util.Uint160, amount int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "mint", to, amount))
}

// Burn invokes the burn method of the contract.
func (c *Contract) Burn(amount int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "burn", amount))
}

// Transfer invokes the transfer method of the contract.
func (c *Contract) Transfer(to util.Uint160, amount int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "transfer", to, amount))
}

// Approve invokes the approve method of the contract.
func (c *Contract) Approve(spender util.Uint160, amount int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "approve", spender, amount))
}

// IncreaseAllowance invokes the increase_allowance method of the contract.
func (c *Contract) IncreaseAllowance(spender util.Uint160, delta int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "increase_allowance", spender, delta))
}

// DecreaseAllowance invokes the decrease_allowance method of the contract.
func (c *Contract) DecreaseAllowance(spender util.Uint160, delta int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "decrease_allowance", spender, delta))
}

// TransferFrom invokes the transfer_from method of the contract.
func (c *Contract) TransferFrom(from, to util.Uint160, amount int64) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "transfer_from", from, to, amount))
}

// Pause invokes the pause method of the contract.
func (c *Contract) Pause() ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "pause"))
}

// Unpause invokes the unpause method of the contract.
func (c *Contract) Unpause() ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "unpause"))
}

// BlacklistAdd invokes the blacklist_add method of the contract.
func (c *Contract) BlacklistAdd(target util.Uint160) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "blacklist_add", target))
}

// BlacklistRemove invokes the blacklist_remove method of the contract.
func (c *Contract) BlacklistRemove(target util.Uint160) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "blacklist_remove", target))
}

// TransferOwnership invokes the transfer_ownership method of the contract.
func (c *Contract) TransferOwnership(newOwner util.Uint160) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "transfer_ownership", newOwner))
}

// BatchTransfer invokes the batch_transfer method of the contract.
func (c *Contract) BatchTransfer(recipients []corebank.BatchEntry) ([]corebank.Notification, error) {
	return unwrapEvents(c.invoker.Invoke(c.account, "batch_transfer", recipients))
}

func unwrapInt64(res *dispatch.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	v, ok := res.Value.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type %T", res.Value)
	}
	return v, nil
}

func unwrapBool(res *dispatch.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	v, ok := res.Value.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected result type %T", res.Value)
	}
	return v, nil
}

func unwrapUint160(res *dispatch.Result, err error) (util.Uint160, error) {
	if err != nil {
		return util.Uint160{}, err
	}
	v, ok := res.Value.(util.Uint160)
	if !ok {
		return util.Uint160{}, fmt.Errorf("unexpected result type %T", res.Value)
	}
	return v, nil
}

func unwrapEvents(res *dispatch.Result, err error) ([]corebank.Notification, error) {
	if err != nil {
		return nil, err
	}
	return res.Events, nil
}
