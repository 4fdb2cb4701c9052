// trivaned hosts a set of execution domains in one process and coordinates
// deployment of the replicated asset across them.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/trivaneio/trivane-contracts/chains/local"
	"github.com/trivaneio/trivane-contracts/db"
	"github.com/trivaneio/trivane-contracts/derive"
	"github.com/trivaneio/trivane-contracts/utils/core"
	"github.com/trivaneio/trivane-contracts/utils/monitoring"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

var (
	configPath string

	assetName   string
	assetSymbol string
	assetSupply string
	origin      uint64
	saltHex     string
	deployerHex string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trivaned",
		Short: "Cross-domain replicated asset deployer",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Host the configured domains and serve deployments",
		RunE:  run,
	}
	runCmd.Flags().StringVar(&configPath, "config", "config.toml", "path to the TOML config file")

	computeCmd := &cobra.Command{
		Use:   "compute-address",
		Short: "Print the deterministic asset address for a spec and salt",
		RunE:  computeAddress,
	}
	computeCmd.Flags().StringVar(&assetName, "name", "", "asset name")
	computeCmd.Flags().StringVar(&assetSymbol, "symbol", "", "asset symbol")
	computeCmd.Flags().StringVar(&assetSupply, "supply", "0", "initial supply, base 10")
	computeCmd.Flags().Uint64Var(&origin, "origin", 0, "origin domain id")
	computeCmd.Flags().StringVar(&saltHex, "salt", "", "32-byte salt, hex")
	computeCmd.Flags().StringVar(&deployerHex, "deployer", "", "orchestrator address, hex")

	rootCmd.AddCommand(runCmd, computeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log15.New("system", "trivaned")

	if err := monitoring.Init(); err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var recorder core.Recorder
	if cfg.DatabaseEnabled {
		dbCfg, err := db.ConfigFromEnv()
		if err != nil {
			return err
		}
		mgr, err := db.NewManager(dbCfg)
		if err != nil {
			return err
		}
		recorder = mgr
	}

	net := local.NewNetwork(cfg.Messenger)
	sysErr := make(chan error)
	c := core.NewCore(sysErr)

	for _, d := range cfg.Domains {
		chain, err := local.NewChain(d.Id, d.Name, cfg.Orchestrator, cfg.Owner, net, recorder, nil)
		if err != nil {
			return fmt.Errorf("initialize domain %d: %w", d.Id, err)
		}
		for _, dest := range cfg.Domains {
			if err := chain.AddChain(cfg.Owner, dest.Id); err != nil {
				return fmt.Errorf("seed registry of domain %d: %w", d.Id, err)
			}
		}
		c.AddChain(chain)
		logger.Info("hosting domain", "domain", d.Id, "name", d.Name)
	}

	c.Start()
	return nil
}

func computeAddress(cmd *cobra.Command, args []string) error {
	supply, ok := new(big.Int).SetString(assetSupply, 10)
	if !ok {
		return fmt.Errorf("invalid supply %q", assetSupply)
	}
	if !common.IsHexAddress(deployerHex) {
		return fmt.Errorf("invalid deployer address %q", deployerHex)
	}

	spec := msg.AssetSpec{
		Name:           assetName,
		Symbol:         assetSymbol,
		InitialSupply:  supply,
		OriginDomainId: msg.ChainId(origin),
	}

	code, err := derive.ComputeBytecode(spec)
	if err != nil {
		return err
	}

	salt := msg.Salt(common.HexToHash(saltHex))
	asset := derive.ComputeAddress(salt, derive.Hash(code), common.HexToAddress(deployerHex))
	fmt.Println(asset.Hex())
	return nil
}
