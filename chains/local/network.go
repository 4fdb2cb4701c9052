package local

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	solsha3 "github.com/miguelmota/go-solidity-sha3"

	"github.com/trivaneio/trivane-contracts/utils/core"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

const inboxDepth = 64

// Network is an in-process transport connecting hosted domains. It relays
// authenticated envelopes without ordering or delivery guarantees beyond
// "accepted sends eventually reach the inbox": each domain drains its inbox
// at its own pace, and nothing observes remote execution.
//
// The messenger singleton has the same address on every domain, mirroring how
// predeployed transports work.
type Network struct {
	addr common.Address
	log  log15.Logger

	mu      sync.Mutex
	inboxes map[msg.ChainId]chan msg.Message
	nonce   uint64
}

func NewNetwork(addr common.Address) *Network {
	return &Network{
		addr:    addr,
		log:     log15.New("system", "network"),
		inboxes: make(map[msg.ChainId]chan msg.Message),
	}
}

// Address is the messenger singleton's domain-local address.
func (n *Network) Address() common.Address {
	return n.addr
}

// Host opens the inbox for a domain. The returned channel is the domain's
// inbound message stream.
func (n *Network) Host(id msg.ChainId) <-chan msg.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	inbox, ok := n.inboxes[id]
	if !ok {
		inbox = make(chan msg.Message, inboxDepth)
		n.inboxes[id] = inbox
	}
	return inbox
}

// Endpoint binds a sender on a source domain into the transport. The sender
// address is attested by the transport: receivers see it as Message.Sender.
func (n *Network) Endpoint(source msg.ChainId, sender common.Address) core.Messenger {
	return &endpoint{net: n, source: source, sender: sender}
}

func (n *Network) deliver(m msg.Message) (msg.Handle, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	inbox, ok := n.inboxes[m.Destination]
	if !ok {
		return msg.Handle{}, fmt.Errorf("no route to domain %d", m.Destination)
	}

	select {
	case inbox <- m:
	default:
		return msg.Handle{}, fmt.Errorf("inbox full for domain %d", m.Destination)
	}

	n.nonce++
	handle := messageHandle(m, n.nonce)
	n.log.Debug("message relayed", "src", m.Source, "dest", m.Destination, "handle", handle.Hex())
	return handle, nil
}

// messageHandle is the solidity-packed hash identifying one accepted send.
func messageHandle(m msg.Message, nonce uint64) msg.Handle {
	digest := solsha3.SoliditySHA3(
		// types
		[]string{"uint64", "uint64", "uint64", "address", "address", "bytes32"},
		// values
		[]interface{}{
			nonce,
			uint64(m.Source),
			uint64(m.Destination),
			m.Target.Hex(),
			m.Sender.Hex(),
			[32]byte(crypto.Keccak256Hash(m.Payload)),
		},
	)

	var handle msg.Handle
	copy(handle[:], digest)
	return handle
}

type endpoint struct {
	net    *Network
	source msg.ChainId
	sender common.Address
}

func (e *endpoint) Address() common.Address {
	return e.net.addr
}

func (e *endpoint) Send(dest msg.ChainId, target common.Address, payload []byte) (msg.Handle, error) {
	return e.net.deliver(msg.Message{
		Source:      e.source,
		Destination: dest,
		Target:      target,
		Sender:      e.sender,
		Payload:     payload,
	})
}
