package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trivaneio/trivane-contracts/utils/msg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
owner = "0xa11ce00000000000000000000000000000000001"
orchestrator = "0x4200000000000000000000000000000000000777"
messenger = "0x4200000000000000000000000000000000000007"
database_enabled = true

[[domains]]
id = 1
name = "alpha"

[[domains]]
id = 2
name = "beta"
	`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DatabaseEnabled {
		t.Fatal("database_enabled not honored")
	}
	if len(cfg.Domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(cfg.Domains))
	}
	if cfg.Domains[0].Id != msg.ChainId(1) || cfg.Domains[0].Name != "alpha" {
		t.Fatalf("unexpected first domain: %+v", cfg.Domains[0])
	}
	if cfg.Owner != common.HexToAddress("0xa11ce00000000000000000000000000000000001") {
		t.Fatalf("unexpected owner: %s", cfg.Owner.Hex())
	}
	if cfg.Orchestrator != common.HexToAddress("0x4200000000000000000000000000000000000777") {
		t.Fatalf("unexpected orchestrator: %s", cfg.Orchestrator.Hex())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad owner": `
owner = "not-an-address"
orchestrator = "0x4200000000000000000000000000000000000777"
messenger = "0x4200000000000000000000000000000000000007"
[[domains]]
id = 1
name = "alpha"
		`,
		"no domains": `
owner = "0xa11ce00000000000000000000000000000000001"
orchestrator = "0x4200000000000000000000000000000000000777"
messenger = "0x4200000000000000000000000000000000000007"
		`,
		"duplicate domain": `
owner = "0xa11ce00000000000000000000000000000000001"
orchestrator = "0x4200000000000000000000000000000000000777"
messenger = "0x4200000000000000000000000000000000000007"
[[domains]]
id = 1
name = "alpha"
[[domains]]
id = 1
name = "beta"
		`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, content)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
