/*
The local package hosts execution domains in-process. Each Chain owns one
domain's orchestrator, its deterministic-create primitive and a listener
draining the domain's transport inbox. A Network connects the chains and
plays the cross-domain messenger.

Hosted chains execute strictly sequentially: the local Deploy surface and the
inbound listener share one lock, so orchestrator invocations on a domain never
interleave.
*/
package local

import (
	"math/big"
	"sync"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"

	"github.com/trivaneio/trivane-contracts/utils/core"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

var _ core.Chain = (*Chain)(nil)

type Chain struct {
	id      msg.ChainId
	name    string
	orch    *core.Orchestrator
	creator *Creator
	net     *Network
	inbox   <-chan msg.Message
	stop    chan int
	log     log15.Logger

	// serializes orchestrator invocations within the domain
	mu sync.Mutex
}

// NewChain hosts one domain on the given network. self is the orchestrator
// address, which must be identical across all chains sharing a deployment.
func NewChain(id msg.ChainId, name string, self, owner common.Address, net *Network, recorder core.Recorder, logger log15.Logger) (*Chain, error) {
	if logger == nil {
		logger = log15.New("chain", name, "domain", id)
	}

	creator := NewCreator(self)
	orch, err := core.NewOrchestrator(id, self, owner, creator, net.Endpoint(id, self), recorder, logger)
	if err != nil {
		return nil, err
	}

	return &Chain{
		id:      id,
		name:    name,
		orch:    orch,
		creator: creator,
		net:     net,
		inbox:   net.Host(id),
		stop:    make(chan int),
		log:     logger,
	}, nil
}

func (c *Chain) Id() msg.ChainId {
	return c.id
}

func (c *Chain) Name() string {
	return c.name
}

func (c *Chain) Orchestrator() *core.Orchestrator {
	return c.orch
}

func (c *Chain) Creator() *Creator {
	return c.creator
}

// Deploy runs the origin leg on this domain.
func (c *Chain) Deploy(name, symbol string, supply *big.Int, salt msg.Salt) (common.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orch.Deploy(name, symbol, supply, salt)
}

// AddChain registers a destination domain on this chain's registry. Owner only.
func (c *Chain) AddChain(caller common.Address, id msg.ChainId) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orch.AddChain(caller, id)
}

// RemoveChain unregisters a destination domain. Owner only.
func (c *Chain) RemoveChain(caller common.Address, id msg.ChainId) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orch.RemoveChain(caller, id)
}

// Start launches the inbound listener.
func (c *Chain) Start() error {
	c.log.Debug("Starting listener...")
	go c.listen()
	return nil
}

// Stop signals to any running routines to exit
func (c *Chain) Stop() {
	close(c.stop)
}

func (c *Chain) listen() {
	for {
		select {
		case <-c.stop:
			return
		case m := <-c.inbox:
			c.dispatch(m)
		}
	}
}

// dispatch authenticates and executes one inbound remote-deploy call.
// Failures are terminal for the message: the transport gives no retry.
func (c *Chain) dispatch(m msg.Message) {
	spec, salt, err := msg.DecodeDeploy(m.Payload)
	if err != nil {
		c.log.Error("failed to decode inbound payload", "src", m.Source, "err", err)
		return
	}

	in := core.Inbound{Caller: c.net.Address(), Sender: m.Sender}

	c.mu.Lock()
	asset, err := c.orch.DeployRemote(in, spec, salt)
	c.mu.Unlock()
	if err != nil {
		c.log.Error("remote deploy rejected", "src", m.Source, "origin", spec.OriginDomainId, "err", err)
		return
	}
	c.log.Info("remote deploy executed", "src", m.Source, "asset", asset.Hex())
}
