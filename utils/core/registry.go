package core

import (
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

// ChainRegistry is the set of supported domains: a dense slice for fan-out
// iteration plus a position index for O(1) membership and swap-remove.
// Invariant: chains contains id exactly once iff index[id] is its position.
// Order carries no meaning and changes on removal.
type ChainRegistry struct {
	chains []msg.ChainId
	index  map[msg.ChainId]int
	emit   Emitter
}

func NewChainRegistry(emit Emitter) *ChainRegistry {
	return &ChainRegistry{
		chains: make([]msg.ChainId, 0),
		index:  make(map[msg.ChainId]int),
		emit:   emit,
	}
}

// Add registers a domain. Fails with ErrChainAlreadySupported if present.
func (r *ChainRegistry) Add(id msg.ChainId) error {
	if _, ok := r.index[id]; ok {
		return ErrChainAlreadySupported
	}
	r.index[id] = len(r.chains)
	r.chains = append(r.chains, id)
	r.emit.Emit(ChainAdded{Id: id})
	return nil
}

// Remove unregisters a domain by overwriting its slot with the last element
// and shrinking the slice. Fails with ErrChainNotSupported if absent.
func (r *ChainRegistry) Remove(id msg.ChainId) error {
	pos, ok := r.index[id]
	if !ok {
		return ErrChainNotSupported
	}
	last := len(r.chains) - 1
	moved := r.chains[last]
	r.chains[pos] = moved
	r.index[moved] = pos
	r.chains = r.chains[:last]
	delete(r.index, id)
	r.emit.Emit(ChainRemoved{Id: id})
	return nil
}

// IsSupported reports membership in O(1).
func (r *ChainRegistry) IsSupported(id msg.ChainId) bool {
	_, ok := r.index[id]
	return ok
}

// Chains returns a copy of the registered domains, safe to iterate while the
// registry mutates.
func (r *ChainRegistry) Chains() []msg.ChainId {
	out := make([]msg.ChainId, len(r.chains))
	copy(out, r.chains)
	return out
}

func (r *ChainRegistry) Len() int {
	return len(r.chains)
}
