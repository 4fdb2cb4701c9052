package local

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trivaneio/trivane-contracts/utils/core"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

var ErrEmptyCode = errors.New("empty creation code")

// Creator is an in-memory deterministic-create primitive for one domain,
// bound to a single deployer address. It stores the code hash landed at each
// address and rejects empty code and address collisions.
type Creator struct {
	deployer common.Address

	mu   sync.Mutex
	code map[common.Address]common.Hash
}

var _ core.Creator = (*Creator)(nil)

func NewCreator(deployer common.Address) *Creator {
	return &Creator{
		deployer: deployer,
		code:     make(map[common.Address]common.Hash),
	}
}

// Create places code at the address derived from (deployer, salt, hash(code)).
func (c *Creator) Create(value *big.Int, salt msg.Salt, code []byte) (common.Address, error) {
	if len(code) == 0 {
		return common.Address{}, ErrEmptyCode
	}

	codeHash := crypto.Keccak256Hash(code)
	addr := crypto.CreateAddress2(c.deployer, salt, codeHash.Bytes())

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.code[addr]; ok {
		return common.Address{}, fmt.Errorf("address collision at %s", addr.Hex())
	}
	c.code[addr] = codeHash
	return addr, nil
}

// Deployments is the number of addresses code has landed at.
func (c *Creator) Deployments() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.code)
}

// CodeAt reports the code hash at addr and whether any code has landed there.
func (c *Creator) CodeAt(addr common.Address) (common.Hash, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hash, ok := c.code[addr]
	return hash, ok
}
