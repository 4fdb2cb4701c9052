package derive

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivaneio/trivane-contracts/utils/msg"
)

func testSpec(origin msg.ChainId) msg.AssetSpec {
	return msg.AssetSpec{
		Name:           "Test Token",
		Symbol:         "TEST",
		InitialSupply:  big.NewInt(1000000),
		OriginDomainId: origin,
	}
}

func TestComputeBytecode_Pure(t *testing.T) {
	first, err := ComputeBytecode(testSpec(1))
	require.NoError(t, err)
	second, err := ComputeBytecode(testSpec(1))
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical spec must yield byte-identical bytecode")
}

func TestComputeBytecode_OriginBound(t *testing.T) {
	one, err := ComputeBytecode(testSpec(1))
	require.NoError(t, err)
	two, err := ComputeBytecode(testSpec(2))
	require.NoError(t, err)
	assert.NotEqual(t, Hash(one), Hash(two), "origin domain is part of the constructor encoding")
}

// TestComputeAddress_Formula recomputes the deterministic-create formula by
// hand: low 160 bits of keccak256(0xff ++ deployer ++ salt ++ bytecodeHash).
func TestComputeAddress_Formula(t *testing.T) {
	deployer := common.HexToAddress("0x4200000000000000000000000000000000000777")
	salt := msg.Salt(common.HexToHash("0x01"))

	code, err := ComputeBytecode(testSpec(1))
	require.NoError(t, err)
	codeHash := Hash(code)

	var preimage []byte
	preimage = append(preimage, 0xff)
	preimage = append(preimage, deployer.Bytes()...)
	preimage = append(preimage, salt[:]...)
	preimage = append(preimage, codeHash.Bytes()...)
	want := common.BytesToAddress(crypto.Keccak256(preimage)[12:])

	assert.Equal(t, want, ComputeAddress(salt, codeHash, deployer))
}

func TestComputeAddress_SaltNamespacing(t *testing.T) {
	deployer := common.HexToAddress("0x4200000000000000000000000000000000000777")
	code, err := ComputeBytecode(testSpec(1))
	require.NoError(t, err)
	codeHash := Hash(code)

	a := ComputeAddress(msg.Salt(common.HexToHash("0x01")), codeHash, deployer)
	b := ComputeAddress(msg.Salt(common.HexToHash("0x02")), codeHash, deployer)
	assert.NotEqual(t, a, b)

	other := common.HexToAddress("0x4200000000000000000000000000000000000778")
	c := ComputeAddress(msg.Salt(common.HexToHash("0x01")), codeHash, other)
	assert.NotEqual(t, a, c, "addresses are namespaced per deployer")
}
