// Package derive computes deployment bytecode and deterministic-create
// addresses for the replicated asset. Both functions are pure; every domain
// running the same inputs through them arrives at the same address with no
// coordination.
package derive

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trivaneio/trivane-contracts/models"
	"github.com/trivaneio/trivane-contracts/utils/msg"
)

var assetAbi abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(models.TrivaneAssetAbi))
	if err != nil {
		panic(fmt.Sprintf("derive: invalid asset abi: %v", err))
	}
	assetAbi = parsed
}

// ComputeBytecode returns the asset creation code concatenated with the
// ABI-encoded constructor arguments from spec. Byte-identical output for
// identical specs is what lets every domain agree on the bytecode hash.
func ComputeBytecode(spec msg.AssetSpec) ([]byte, error) {
	supply := spec.InitialSupply
	if supply == nil {
		supply = new(big.Int)
	}
	args, err := assetAbi.Pack("", spec.Name, spec.Symbol, supply, uint64(spec.OriginDomainId))
	if err != nil {
		return nil, fmt.Errorf("unable to pack constructor arguments: %w", err)
	}
	return append(common.FromHex(models.TrivaneAssetBin), args...), nil
}

// ComputeAddress derives the deterministic-create address:
// low 160 bits of keccak256(0xff ‖ deployer ‖ salt ‖ bytecodeHash).
func ComputeAddress(salt msg.Salt, bytecodeHash common.Hash, deployer common.Address) common.Address {
	return crypto.CreateAddress2(deployer, salt, bytecodeHash.Bytes())
}

// Hash is the keccak256 used throughout for bytecode hashing.
func Hash(data []byte) common.Hash {
	return crypto.Keccak256Hash(data)
}
