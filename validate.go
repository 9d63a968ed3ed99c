package bitcoinaddress

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cryptosphere-systems/bitcoinaddress/base58"
	"github.com/cryptosphere-systems/bitcoinaddress/bech32"
	"github.com/cryptosphere-systems/bitcoinaddress/params"
	log "github.com/sirupsen/logrus"
)

// base58-check payloads are 1 version byte + 20 hash bytes + 4 checksum bytes.
const base58PayloadSize = 25

const minBase58Length = 27
const maxBase58Length = 35

// Validate reports whether address is a well-formed base58-check or segwit
// bech32 address on the given network. It never fails: every malformed
// input maps to false.
func Validate(address Address, network Network) bool {
	if err := CheckAddress(address, network); err != nil {
		log.WithField("address", address).Tracef("invalid address: %v", err)
		return false
	}
	return true
}

// CheckAddress is the error-returning form of Validate, for callers that
// want the rejection reason. An empty network selects mainnet.
func CheckAddress(address Address, network Network) error {
	if network == "" {
		network = Mainnet
	}
	p, err := params.Get(params.Network(network))
	if err != nil {
		return fmt.Errorf("unknown bitcoin network %s: %w", network, err)
	}
	// Dispatch on the prefix: strings shaped like an HRP for this network
	// are only ever tried as bech32.
	hrp := p.Bech32HRPSegwit
	if len(address) >= len(hrp) && strings.ToLower(string(address[:len(hrp)])) == hrp {
		return checkBech32(address, hrp)
	}
	return checkBase58(address, params.MagicBytes(p))
}

// ValidateBase58 reports whether address is a well-formed base58-check
// address whose version byte is one of magicBytes.
func ValidateBase58(address Address, magicBytes []byte) bool {
	return checkBase58(address, magicBytes) == nil
}

// ValidateBech32 reports whether address is a well-formed segwit address
// under the given human-readable part.
func ValidateBech32(address Address, hrp string) bool {
	return checkBech32(address, hrp) == nil
}

func checkBase58(address Address, magicBytes []byte) error {
	if len(address) < minBase58Length || len(address) > maxBase58Length {
		return fmt.Errorf("invalid base58 address length %d", len(address))
	}
	decoded, err := base58.Decode(string(address), base58PayloadSize)
	if err != nil {
		return err
	}
	version := decoded[0]
	if bytes.IndexByte(magicBytes, version) < 0 {
		return fmt.Errorf("version byte %d is not valid for this network", version)
	}
	payload := decoded[:base58PayloadSize-base58.ChecksumSize]
	checksum := decoded[base58PayloadSize-base58.ChecksumSize:]
	if !bytes.Equal(checksum, base58.Checksum(payload)) {
		return fmt.Errorf("base58 checksum mismatch")
	}
	// A string can carry a valid checksum without being the canonical
	// encoding of its payload, e.g. with the leading-zero padding omitted.
	// Only the exact round trip is accepted.
	if reencoded := base58.Encode(decoded); reencoded != string(address) {
		return fmt.Errorf("address is not in canonical form, expected %s", reencoded)
	}
	return nil
}

func checkBech32(address Address, hrp string) error {
	_, _, err := bech32.DecodeSegwit(hrp, string(address))
	return err
}
