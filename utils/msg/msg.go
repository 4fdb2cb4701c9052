// Package msg defines the types carried between domains: chain identifiers,
// deployment salts, asset specs and the wire encoding of remote-deploy calls.
package msg

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ChainId is an opaque identifier for an independent execution domain.
type ChainId uint64

// Salt is the caller-chosen 32-byte value that fixes a deployment address
// within one deployer's namespace.
type Salt [32]byte

// Handle identifies a message accepted by the transport. The zero handle is
// reserved: a transport returning it has rejected the send.
type Handle [32]byte

func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) Hex() string {
	return common.Hash(h).Hex()
}

// AssetSpec fixes the constructor parameters of a replicated asset. It is
// immutable once formed; OriginDomainId is always the domain the asset was
// first deployed on, never the local domain of a remote leg.
type AssetSpec struct {
	Name           string
	Symbol         string
	InitialSupply  *big.Int
	OriginDomainId ChainId
}

// Message is a cross-domain envelope as handed to a destination domain by the
// transport. Sender is the application-level account that sent the message on
// the source domain, as attested by the transport.
type Message struct {
	Source      ChainId
	Destination ChainId
	Target      common.Address
	Sender      common.Address
	Payload     []byte
}

var deployArgs = abi.Arguments{
	{Name: "name", Type: mustType("string")},
	{Name: "symbol", Type: mustType("string")},
	{Name: "initialSupply", Type: mustType("uint256")},
	{Name: "originDomainId", Type: mustType("uint64")},
	{Name: "salt", Type: mustType("bytes32")},
}

func mustType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("msg: bad abi type %q: %v", t, err))
	}
	return ty
}

// EncodeDeploy packs a remote-deploy call into its ABI wire form.
func EncodeDeploy(spec AssetSpec, salt Salt) ([]byte, error) {
	supply := spec.InitialSupply
	if supply == nil {
		supply = new(big.Int)
	}
	payload, err := deployArgs.Pack(spec.Name, spec.Symbol, supply, uint64(spec.OriginDomainId), [32]byte(salt))
	if err != nil {
		return nil, fmt.Errorf("unable to pack deploy payload: %w", err)
	}
	return payload, nil
}

// DecodeDeploy unpacks the ABI wire form produced by EncodeDeploy.
func DecodeDeploy(payload []byte) (AssetSpec, Salt, error) {
	values, err := deployArgs.Unpack(payload)
	if err != nil {
		return AssetSpec{}, Salt{}, fmt.Errorf("unable to unpack deploy payload: %w", err)
	}

	spec := AssetSpec{
		Name:           values[0].(string),
		Symbol:         values[1].(string),
		InitialSupply:  values[2].(*big.Int),
		OriginDomainId: ChainId(values[3].(uint64)),
	}
	salt := Salt(values[4].([32]byte))
	return spec, salt, nil
}

// NewRemoteDeploy builds the envelope Sync sends for one destination domain.
func NewRemoteDeploy(source, dest ChainId, target, sender common.Address, spec AssetSpec, salt Salt) (Message, error) {
	payload, err := EncodeDeploy(spec, salt)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Source:      source,
		Destination: dest,
		Target:      target,
		Sender:      sender,
		Payload:     payload,
	}, nil
}

func (s AssetSpec) String() string {
	supply := "0"
	if s.InitialSupply != nil {
		supply = s.InitialSupply.String()
	}
	return strings.Join([]string{s.Name, s.Symbol, supply, fmt.Sprintf("%d", s.OriginDomainId)}, "/")
}
