package msg

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeployPayloadRoundTrip(t *testing.T) {
	spec := AssetSpec{
		Name:           "Test Token",
		Symbol:         "TEST",
		InitialSupply:  big.NewInt(1000000),
		OriginDomainId: 1,
	}
	salt := Salt(common.HexToHash("0x01"))

	payload, err := EncodeDeploy(spec, salt)
	require.NoError(t, err)

	gotSpec, gotSalt, err := DecodeDeploy(payload)
	require.NoError(t, err)
	assert.Equal(t, spec.Name, gotSpec.Name)
	assert.Equal(t, spec.Symbol, gotSpec.Symbol)
	assert.Zero(t, spec.InitialSupply.Cmp(gotSpec.InitialSupply))
	assert.Equal(t, spec.OriginDomainId, gotSpec.OriginDomainId)
	assert.Equal(t, salt, gotSalt)
}

func TestDecodeDeploy_Garbage(t *testing.T) {
	_, _, err := DecodeDeploy([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestHandle_IsZero(t *testing.T) {
	assert.True(t, Handle{}.IsZero())
	var h Handle
	h[31] = 1
	assert.False(t, h.IsZero())
}

func TestNewRemoteDeploy(t *testing.T) {
	target := common.HexToAddress("0x4200000000000000000000000000000000000777")
	spec := AssetSpec{Name: "Test Token", Symbol: "TEST", InitialSupply: big.NewInt(5), OriginDomainId: 3}

	m, err := NewRemoteDeploy(3, 9, target, target, spec, Salt{})
	require.NoError(t, err)
	assert.Equal(t, ChainId(3), m.Source)
	assert.Equal(t, ChainId(9), m.Destination)
	assert.Equal(t, target, m.Target)
	assert.Equal(t, target, m.Sender)

	gotSpec, _, err := DecodeDeploy(m.Payload)
	require.NoError(t, err)
	assert.Equal(t, spec.Name, gotSpec.Name)
}
