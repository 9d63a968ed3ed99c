package params

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network is a chain network selector.
type Network string

const Mainnet Network = "mainnet"
const Testnet Network = "testnet"

// Get returns the chain parameters for a bitcoin network.
func Get(network Network) (chaincfg.Params, error) {
	switch network {
	case Mainnet:
		return chaincfg.MainNetParams, nil
	case Testnet:
		return chaincfg.TestNet3Params, nil
	}
	return chaincfg.Params{}, errors.New("unsupported bitcoin network: " + string(network))
}

// MagicBytes returns the version bytes a base58-check address may carry on
// the given network: the P2PKH and P2SH address IDs.
func MagicBytes(p chaincfg.Params) []byte {
	return []byte{p.PubKeyHashAddrID, p.ScriptHashAddrID}
}
