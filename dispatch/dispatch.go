// Package dispatch implements the entry-point boundary of the bank
// contract: it owns the single contract state instance, maps wire
// method names to core operations, decodes arguments, serializes
// invocations and reports every call through structured logs and
// Prometheus metrics.
package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nspcc-dev/bank-contract/bank"
	"github.com/nspcc-dev/bank-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Dispatcher-level error kinds. They are produced before the core is
// reached and are distinct from the contract error kinds of the bank
// package.
var (
	// ErrUnknownMethod is returned for method names outside the table.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidArguments is returned when the argument list does not
	// match the method signature.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Result is the outcome of a successful call: the value returned by the
// operation (nil for mutations), the notifications it recorded and the
// call ID assigned by the dispatcher.
type Result struct {
	ID     uuid.UUID
	Value  any
	Events []bank.Notification
}

type handler func(caller util.Uint160, args []any) (any, error)

// Dispatcher owns a bank.Contract for the lifetime of the process and
// is the only component allowed to touch it. The host guarantees calls
// are processed one at a time; the dispatcher enforces the same with a
// mutex so the core can stay lock-free.
type Dispatcher struct {
	mu       sync.Mutex
	contract *bank.Contract
	methods  map[string]handler
	log      *zap.Logger
	metrics  *metrics
}

// New creates a Dispatcher over the given contract state. A nil logger
// disables logging; a nil registerer keeps metrics on a private
// registry.
func New(c *bank.Contract, log *zap.Logger, reg prometheus.Registerer) (*Dispatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	d := &Dispatcher{
		contract: c,
		log:      log,
	}
	d.methods = d.methodTable()

	m, err := newMetrics(reg, d.totalSupply)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	d.metrics = m

	return d, nil
}

// Invoke executes one named contract call on behalf of caller. The
// caller identity must already be resolved and authenticated by the
// host. On success the result carries the applied state deltas as
// notifications; on failure the contract state is untouched.
func (d *Dispatcher) Invoke(caller util.Uint160, method string, args ...any) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New()

	h, ok := d.methods[method]
	if !ok {
		d.metrics.observe("unknown", false)
		d.log.Warn("call rejected",
			zap.Stringer("id", id),
			zap.String("method", method),
			zap.String("caller", common.FormatAccount(caller)))
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	value, err := h(caller, args)
	if err != nil {
		d.metrics.observe(method, false)
		d.log.Warn("call failed",
			zap.Stringer("id", id),
			zap.String("method", method),
			zap.String("caller", common.FormatAccount(caller)),
			zap.Error(err))
		return nil, err
	}

	events := d.contract.Notifications()
	d.metrics.observe(method, true)
	d.log.Info("call applied",
		zap.Stringer("id", id),
		zap.String("method", method),
		zap.String("caller", common.FormatAccount(caller)),
		zap.Int("notifications", len(events)))

	return &Result{ID: id, Value: value, Events: events}, nil
}

func (d *Dispatcher) totalSupply() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return float64(d.contract.TotalSupply())
}

// methodTable maps wire method names to core operations. The names are
// the snake_case forms the host dispatches on.
func (d *Dispatcher) methodTable() map[string]handler {
	c := d.contract

	return map[string]handler{
		// Queries.
		"balance_of": func(_ util.Uint160, args []any) (any, error) {
			acc, err := accountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return c.BalanceOf(acc), nil
		},
		"allowance": func(_ util.Uint160, args []any) (any, error) {
			owner, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			spender, err := accountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return c.Allowance(owner, spender), nil
		},
		"total_supply": func(_ util.Uint160, args []any) (any, error) {
			if err := checkArity(args, 0); err != nil {
				return nil, err
			}
			return c.TotalSupply(), nil
		},
		"is_paused": func(_ util.Uint160, args []any) (any, error) {
			if err := checkArity(args, 0); err != nil {
				return nil, err
			}
			return c.IsPaused(), nil
		},
		"is_blacklisted": func(_ util.Uint160, args []any) (any, error) {
			acc, err := accountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return c.IsBlacklisted(acc), nil
		},
		"owner": func(_ util.Uint160, args []any) (any, error) {
			if err := checkArity(args, 0); err != nil {
				return nil, err
			}
			return c.Owner(), nil
		},

		// Mutations.
		"mint": func(caller util.Uint160, args []any) (any, error) {
			to, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			amount, err := amountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return nil, c.Mint(caller, to, amount)
		},
		"burn": func(caller util.Uint160, args []any) (any, error) {
			amount, err := amountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return nil, c.Burn(caller, amount)
		},
		"transfer": func(caller util.Uint160, args []any) (any, error) {
			to, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			amount, err := amountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return nil, c.Transfer(caller, to, amount)
		},
		"approve": func(caller util.Uint160, args []any) (any, error) {
			spender, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			amount, err := amountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return nil, c.Approve(caller, spender, amount)
		},
		"increase_allowance": func(caller util.Uint160, args []any) (any, error) {
			spender, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			delta, err := amountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return nil, c.IncreaseAllowance(caller, spender, delta)
		},
		"decrease_allowance": func(caller util.Uint160, args []any) (any, error) {
			spender, err := accountArg(args, 0, 2)
			if err != nil {
				return nil, err
			}
			delta, err := amountArg(args, 1, 2)
			if err != nil {
				return nil, err
			}
			return nil, c.DecreaseAllowance(caller, spender, delta)
		},
		"transfer_from": func(caller util.Uint160, args []any) (any, error) {
			from, err := accountArg(args, 0, 3)
			if err != nil {
				return nil, err
			}
			to, err := accountArg(args, 1, 3)
			if err != nil {
				return nil, err
			}
			amount, err := amountArg(args, 2, 3)
			if err != nil {
				return nil, err
			}
			return nil, c.TransferFrom(caller, from, to, amount)
		},
		"pause": func(caller util.Uint160, args []any) (any, error) {
			if err := checkArity(args, 0); err != nil {
				return nil, err
			}
			return nil, c.Pause(caller)
		},
		"unpause": func(caller util.Uint160, args []any) (any, error) {
			if err := checkArity(args, 0); err != nil {
				return nil, err
			}
			return nil, c.Unpause(caller)
		},
		"blacklist_add": func(caller util.Uint160, args []any) (any, error) {
			target, err := accountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return nil, c.BlacklistAdd(caller, target)
		},
		"blacklist_remove": func(caller util.Uint160, args []any) (any, error) {
			target, err := accountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return nil, c.BlacklistRemove(caller, target)
		},
		"transfer_ownership": func(caller util.Uint160, args []any) (any, error) {
			newOwner, err := accountArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return nil, c.TransferOwnership(caller, newOwner)
		},
		"batch_transfer": func(caller util.Uint160, args []any) (any, error) {
			recipients, err := entriesArg(args, 0, 1)
			if err != nil {
				return nil, err
			}
			return nil, c.BatchTransfer(caller, recipients)
		},
	}
}
