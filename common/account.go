// Package common contains helpers shared by the contract packages,
// currently the text encoding of account identities used in configs,
// logs and the CLI.
package common

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// ParseAccount converts the text form of an account identity into its
// script hash. Both the standard Neo address form (base58check) and the
// raw form produced by FormatAccount (plain base58 of the 20 script
// hash bytes) are accepted.
func ParseAccount(s string) (util.Uint160, error) {
	if acc, err := address.StringToUint160(s); err == nil {
		return acc, nil
	}

	raw, err := base58.Decode(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid account %q: %w", s, err)
	}

	acc, err := util.Uint160DecodeBytesBE(raw)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid account %q: %w", s, err)
	}

	return acc, nil
}

// FormatAccount returns the raw text form of an account identity, the
// plain base58 encoding of its script hash bytes. It is shorter than
// the address form and carries no network magic, which makes it the
// preferred form for logs and notifications.
func FormatAccount(acc util.Uint160) string {
	return base58.Encode(acc.BytesBE())
}
