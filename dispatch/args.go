package dispatch

import (
	"fmt"

	"github.com/nspcc-dev/bank-contract/bank"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArguments, want, len(args))
	}
	return nil
}

func accountArg(args []any, i, want int) (util.Uint160, error) {
	if err := checkArity(args, want); err != nil {
		return util.Uint160{}, err
	}
	acc, ok := args[i].(util.Uint160)
	if !ok {
		return util.Uint160{}, fmt.Errorf("%w: argument #%d: want account, got %T", ErrInvalidArguments, i, args[i])
	}
	return acc, nil
}

func amountArg(args []any, i, want int) (int64, error) {
	if err := checkArity(args, want); err != nil {
		return 0, err
	}
	switch v := args[i].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: argument #%d: want amount, got %T", ErrInvalidArguments, i, args[i])
	}
}

func entriesArg(args []any, i, want int) ([]bank.BatchEntry, error) {
	if err := checkArity(args, want); err != nil {
		return nil, err
	}
	recipients, ok := args[i].([]bank.BatchEntry)
	if !ok {
		return nil, fmt.Errorf("%w: argument #%d: want recipient list, got %T", ErrInvalidArguments, i, args[i])
	}
	return recipients, nil
}
