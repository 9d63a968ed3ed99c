package bech32

import (
	"errors"
	"fmt"
)

// Witness program length bounds per BIP-141. Version 0 programs are
// further restricted to exactly 20 (P2WPKH) or 32 (P2WSH) bytes.
const (
	minProgramLength   = 2
	maxProgramLength   = 40
	maxWitnessVersion  = 16
	v0KeyHashLength    = 20
	v0ScriptHashLength = 32
)

// ErrUnexpectedHRP is returned when a segwit address decodes under a
// different human-readable part than the one requested.
var ErrUnexpectedHRP = errors.New("unexpected human-readable part")

// DecodeSegwit decodes a segwit address, requiring its human-readable part
// to equal hrp exactly, and returns the witness version and program.
func DecodeSegwit(hrp, addr string) (byte, []byte, error) {
	decodedHRP, data, err := Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if decodedHRP != hrp {
		return 0, nil, fmt.Errorf("%w: want %q, got %q", ErrUnexpectedHRP, hrp, decodedHRP)
	}
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("address carries no witness version")
	}
	program, err := ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if len(program) < minProgramLength || len(program) > maxProgramLength {
		return 0, nil, fmt.Errorf("invalid witness program length %d", len(program))
	}
	version := data[0]
	if version > maxWitnessVersion {
		return 0, nil, fmt.Errorf("invalid witness version %d", version)
	}
	if version == 0 && len(program) != v0KeyHashLength && len(program) != v0ScriptHashLength {
		return 0, nil, fmt.Errorf("invalid version 0 witness program length %d", len(program))
	}
	return version, program, nil
}

// EncodeSegwit builds the segwit address for a witness version and program
// under the given human-readable part.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if version > maxWitnessVersion {
		return "", fmt.Errorf("invalid witness version %d", version)
	}
	if len(program) < minProgramLength || len(program) > maxProgramLength {
		return "", fmt.Errorf("invalid witness program length %d", len(program))
	}
	if version == 0 && len(program) != v0KeyHashLength && len(program) != v0ScriptHashLength {
		return "", fmt.Errorf("invalid version 0 witness program length %d", len(program))
	}
	data, err := ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, append([]byte{version}, data...))
}
