package core

import (
	"github.com/ethereum/go-ethereum/common"
)

// Owned is the single-owner gate over registry mutation and ownership
// transfer. There is no renounce path: the owner is never the zero address.
type Owned struct {
	owner common.Address
	emit  Emitter
}

func NewOwned(owner common.Address, emit Emitter) (*Owned, error) {
	if owner == (common.Address{}) {
		return nil, ErrZeroAddressOwner
	}
	return &Owned{owner: owner, emit: emit}, nil
}

func (o *Owned) Owner() common.Address {
	return o.owner
}

// Auth rejects any caller other than the current owner.
func (o *Owned) Auth(caller common.Address) error {
	if caller != o.owner {
		return ErrCallerNotOwner
	}
	return nil
}

// SetOwner reassigns ownership. Only the current owner may call it, and the
// new owner must be non-zero.
func (o *Owned) SetOwner(caller, next common.Address) error {
	if err := o.Auth(caller); err != nil {
		return err
	}
	if next == (common.Address{}) {
		return ErrZeroAddressOwner
	}
	previous := o.owner
	o.owner = next
	o.emit.Emit(OwnershipTransferred{Previous: previous, Next: next})
	return nil
}
