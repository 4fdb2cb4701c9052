package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"github.com/trivaneio/trivane-contracts/utils/msg"
)

// trivaned config.toml key mapping.
type fileConfig struct {
	Owner           string             `toml:"owner"`
	Orchestrator    string             `toml:"orchestrator"`
	Messenger       string             `toml:"messenger"`
	DatabaseEnabled bool               `toml:"database_enabled"`
	Domains         []fileDomainConfig `toml:"domains"`
}

type fileDomainConfig struct {
	Id   uint64 `toml:"id"`
	Name string `toml:"name"`
}

type Config struct {
	Owner           common.Address
	Orchestrator    common.Address
	Messenger       common.Address
	DatabaseEnabled bool
	Domains         []DomainConfig
}

type DomainConfig struct {
	Id   msg.ChainId
	Name string
}

func loadConfig(path string) (Config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{DatabaseEnabled: raw.DatabaseEnabled}

	var err error
	if cfg.Owner, err = parseAddress("owner", raw.Owner); err != nil {
		return Config{}, err
	}
	if cfg.Orchestrator, err = parseAddress("orchestrator", raw.Orchestrator); err != nil {
		return Config{}, err
	}
	if cfg.Messenger, err = parseAddress("messenger", raw.Messenger); err != nil {
		return Config{}, err
	}

	if len(raw.Domains) == 0 {
		return Config{}, fmt.Errorf("config declares no domains")
	}
	seen := make(map[uint64]bool)
	for _, d := range raw.Domains {
		if d.Name == "" {
			return Config{}, fmt.Errorf("domain %d has no name", d.Id)
		}
		if seen[d.Id] {
			return Config{}, fmt.Errorf("duplicate domain id %d", d.Id)
		}
		seen[d.Id] = true
		cfg.Domains = append(cfg.Domains, DomainConfig{Id: msg.ChainId(d.Id), Name: d.Name})
	}

	return cfg, nil
}

func parseAddress(key, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("config key %q: %q is not a hex address", key, value)
	}
	return common.HexToAddress(value), nil
}
