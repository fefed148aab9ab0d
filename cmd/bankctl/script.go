package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nspcc-dev/bank-contract/bank"
	"github.com/nspcc-dev/bank-contract/common"
	"github.com/nspcc-dev/bank-contract/dispatch"
)

// runScript executes the operation script line by line. Line format:
//
//	<caller> <method> [arg...]
//
// Empty lines and lines starting with '#' are skipped. Arguments are
// decimal amounts, account identities in any form common.ParseAccount
// accepts, or batch entries in the 'account:amount' form. Execution
// stops at the first failing line.
func runScript(sc *bufio.Scanner, d *dispatch.Dispatcher, out io.Writer) error {
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: want '<caller> <method> [arg...]'", n)
		}

		caller, err := common.ParseAccount(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: caller: %w", n, err)
		}

		args, err := parseArgs(fields[2:])
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		res, err := d.Invoke(caller, fields[1], args...)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", n, fields[1], err)
		}

		printResult(out, n, fields[1], res)
	}
	return sc.Err()
}

// parseArgs converts script tokens into the typed arguments the
// dispatcher expects. Batch entries, when present, must make up the
// whole argument list and collapse into a single recipient list.
func parseArgs(tokens []string) ([]any, error) {
	var (
		args    []any
		entries []bank.BatchEntry
	)

	for _, tok := range tokens {
		if strings.Contains(tok, ":") {
			e, err := parseEntry(tok)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
			continue
		}

		if amount, err := strconv.ParseInt(tok, 10, 64); err == nil {
			args = append(args, amount)
			continue
		}

		acc, err := common.ParseAccount(tok)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", tok, err)
		}
		args = append(args, acc)
	}

	if entries != nil {
		if len(args) != 0 {
			return nil, fmt.Errorf("batch entries cannot be mixed with other arguments")
		}
		return []any{entries}, nil
	}
	return args, nil
}

func parseEntry(tok string) (bank.BatchEntry, error) {
	accPart, amountPart, found := strings.Cut(tok, ":")
	if !found {
		return bank.BatchEntry{}, fmt.Errorf("entry %q: want 'account:amount'", tok)
	}

	acc, err := common.ParseAccount(accPart)
	if err != nil {
		return bank.BatchEntry{}, fmt.Errorf("entry %q: %w", tok, err)
	}
	amount, err := strconv.ParseInt(amountPart, 10, 64)
	if err != nil {
		return bank.BatchEntry{}, fmt.Errorf("entry %q: %w", tok, err)
	}

	return bank.BatchEntry{To: acc, Amount: amount}, nil
}

func printResult(out io.Writer, line int, method string, res *dispatch.Result) {
	if res.Value != nil {
		fmt.Fprintf(out, "%d %s => %v\n", line, method, res.Value)
		return
	}

	fmt.Fprintf(out, "%d %s => ok", line, method)
	for _, e := range res.Events {
		fmt.Fprintf(out, " [%s]", e.Event())
	}
	fmt.Fprintln(out)
}
