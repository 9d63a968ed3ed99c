package params_test

import (
	"testing"

	"github.com/cryptosphere-systems/bitcoinaddress/params"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	require := require.New(t)

	mainnet, err := params.Get(params.Mainnet)
	require.NoError(err)
	require.Equal(byte(0), mainnet.PubKeyHashAddrID)
	require.Equal(byte(5), mainnet.ScriptHashAddrID)
	require.Equal("bc", mainnet.Bech32HRPSegwit)

	testnet, err := params.Get(params.Testnet)
	require.NoError(err)
	require.Equal(byte(111), testnet.PubKeyHashAddrID)
	require.Equal(byte(196), testnet.ScriptHashAddrID)
	require.Equal("tb", testnet.Bech32HRPSegwit)

	_, err = params.Get(params.Network("signet"))
	require.Error(err)
}

func TestMagicBytes(t *testing.T) {
	require := require.New(t)

	mainnet, err := params.Get(params.Mainnet)
	require.NoError(err)
	require.Equal([]byte{0, 5}, params.MagicBytes(mainnet))

	testnet, err := params.Get(params.Testnet)
	require.NoError(err)
	require.Equal([]byte{111, 196}, params.MagicBytes(testnet))
}
