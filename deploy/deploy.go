// Package deploy builds the genesis state of the bank contract from a
// YAML configuration: the initial owner and optional genesis
// allocations minted through the ordinary mint path, so the supply
// invariant holds by construction.
package deploy

import (
	"fmt"
	"os"

	"github.com/nspcc-dev/bank-contract/bank"
	"github.com/nspcc-dev/bank-contract/common"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Allocation is one genesis balance: Amount is minted to Account by the
// owner right after the contract is constructed.
type Allocation struct {
	Account string `yaml:"account"`
	Amount  int64  `yaml:"amount"`
}

// Config is the genesis configuration of the bank contract.
type Config struct {
	// Owner is the initial contract owner in any form accepted by
	// common.ParseAccount. Required.
	Owner string `yaml:"owner"`
	// Allocations are the balances minted at genesis. Optional.
	Allocations []Allocation `yaml:"allocations"`
}

// LoadConfig reads and decodes the genesis configuration from path.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Deploy constructs the single contract state instance described by the
// configuration. The returned contract starts with zero supply and is
// then premined by minting each allocation as the owner; any failure
// aborts the deployment.
func Deploy(cfg Config, log *zap.Logger) (*bank.Contract, error) {
	if log == nil {
		log = zap.NewNop()
	}

	owner, err := common.ParseAccount(cfg.Owner)
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}

	c, err := bank.New(owner)
	if err != nil {
		return nil, err
	}

	for i, a := range cfg.Allocations {
		acc, err := common.ParseAccount(a.Account)
		if err != nil {
			return nil, fmt.Errorf("allocation #%d: %w", i, err)
		}
		if err := c.Mint(owner, acc, a.Amount); err != nil {
			return nil, fmt.Errorf("allocation #%d: %w", i, err)
		}
	}

	// Genesis notifications are not part of any call, drop them after
	// reporting.
	for _, n := range c.Notifications() {
		log.Info("genesis allocation", zap.String("event", n.Event()))
	}

	log.Info("bank contract deployed",
		zap.String("owner", common.FormatAccount(owner)),
		zap.Int64("total_supply", c.TotalSupply()))

	return c, nil
}
