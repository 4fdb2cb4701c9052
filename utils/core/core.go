package core

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/log15"

	monitoring "github.com/trivaneio/trivane-contracts/utils/monitoring"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

// Chain is one hosted domain: it runs the domain's inbound listener and owns
// that domain's Orchestrator.
type Chain interface {
	Id() msg.ChainId
	Name() string
	Orchestrator() *Orchestrator
	Start() error
	Stop()
}

// Core supervises the hosted domains of one process.
type Core struct {
	chains []Chain
	log    log15.Logger
	sysErr <-chan error
}

func NewCore(sysErr <-chan error) *Core {
	return &Core{
		chains: make([]Chain, 0),
		log:    log15.New("system", "core"),
		sysErr: sysErr,
	}
}

// AddChain registers a hosted domain with the supervisor.
func (c *Core) AddChain(chain Chain) {
	c.chains = append(c.chains, chain)
}

// Start will call all registered chains' Start methods and block forever (or until signal is received)
func (c *Core) Start() {
	for _, chain := range c.chains {
		err := chain.Start()
		if err != nil {
			c.log.Error(
				"failed to start chain",
				"chain", chain.Id(),
				"err", err,
			)
			return
		}
		c.log.Info(fmt.Sprintf("Started %s domain", chain.Name()))
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)
	monitoring.Message("Trivane deployer started successfully.")
	defer monitoring.Message("Trivane deployer ended")

	// Block here and wait for a signal
	select {
	case err := <-c.sysErr:
		monitoring.Error(err)
		c.log.Error("FATAL ERROR. Shutting down.", "err", err)
	case <-sigc:
		errParam := "interrupt received, shutting down now"
		monitoring.Error(errors.New(errParam))
		c.log.Warn(errParam)
	}

	// Signal chains to shutdown
	for _, chain := range c.chains {
		chain.Stop()
	}
}

func (c *Core) Errors() <-chan error {
	return c.sysErr
}
