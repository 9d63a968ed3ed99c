// Package bech32 implements the BIP-173 checksummed encoding used by
// segwit addresses.
// Reference: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
package bech32

import (
	"errors"
	"fmt"
	"strings"
)

// Charset is the 32-character data alphabet. 1, b, i and o are excluded to
// avoid confusion with the separator and with each other.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// MaxLength is the longest bech32 string BIP-173 permits.
const MaxLength = 90

const checksumLength = 6

var (
	ErrInvalidCharacter = errors.New("invalid bech32 character")
	ErrMixedCase        = errors.New("mixed case bech32 string")
	ErrInvalidSeparator = errors.New("invalid bech32 separator position")
	ErrInvalidLength    = errors.New("bech32 string too long")
	ErrInvalidChecksum  = errors.New("invalid bech32 checksum")
)

var generator = [5]int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

var charsetRev = func() (rev [128]int8) {
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		rev[Charset[i]] = int8(i)
	}
	return rev
}()

// Polymod computes the BCH checksum over a sequence of 5-bit values. A
// checksummed string satisfies Polymod(HRPExpand(hrp) + data) == 1.
func Polymod(values []byte) int {
	chk := 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ int(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// HRPExpand splits the high and low bits of each HRP character, separated
// by a zero, so the checksum covers the prefix without ambiguity against
// the data part.
func HRPExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

// VerifyChecksum reports whether data, including its trailing checksum
// symbols, is consistent with hrp.
func VerifyChecksum(hrp string, data []byte) bool {
	return Polymod(append(HRPExpand(hrp), data...)) == 1
}

// CreateChecksum returns the 6 checksum symbols for the given HRP and data.
func CreateChecksum(hrp string, data []byte) []byte {
	values := append(HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	pm := Polymod(values) ^ 1
	chk := make([]byte, checksumLength)
	for i := range chk {
		chk[i] = byte(pm >> uint(5*(5-i)) & 31)
	}
	return chk
}

// Decode checks and splits a bech32 string, returning the human-readable
// part and the data symbols without the trailing checksum.
func Decode(s string) (string, []byte, error) {
	if len(s) > MaxLength {
		return "", nil, ErrInvalidLength
	}
	hasLower, hasUpper := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(c))
		}
		if c >= 'a' && c <= 'z' {
			hasLower = true
		}
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return "", nil, ErrMixedCase
	}
	s = strings.ToLower(s)

	pos := strings.LastIndexByte(s, '1')
	if pos < 1 || pos+1+checksumLength > len(s) {
		return "", nil, ErrInvalidSeparator
	}
	hrp := s[:pos]
	data := make([]byte, 0, len(s)-pos-1)
	for i := pos + 1; i < len(s); i++ {
		c := s[i]
		if charsetRev[c] < 0 {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(c))
		}
		data = append(data, byte(charsetRev[c]))
	}
	if !VerifyChecksum(hrp, data) {
		return "", nil, ErrInvalidChecksum
	}
	return hrp, data[:len(data)-checksumLength], nil
}

// Encode assembles a bech32 string from an HRP and 5-bit data symbols.
// The HRP is lowercased per BIP-173.
func Encode(hrp string, data []byte) (string, error) {
	if len(hrp) < 1 {
		return "", ErrInvalidSeparator
	}
	if len(hrp)+1+len(data)+checksumLength > MaxLength {
		return "", ErrInvalidLength
	}
	hrp = strings.ToLower(hrp)

	for _, d := range data {
		if d >= 32 {
			return "", fmt.Errorf("%w: data value %d", ErrInvalidCharacter, d)
		}
	}
	var b strings.Builder
	b.WriteString(hrp)
	b.WriteByte('1')
	for _, d := range data {
		b.WriteByte(Charset[d])
	}
	for _, d := range CreateChecksum(hrp, data) {
		b.WriteByte(Charset[d])
	}
	return b.String(), nil
}

// ConvertBits regroups data from fromBits-wide values into toBits-wide
// values. With pad set, a final partial group is emitted left shifted to
// fill toBits; without it, leftover bits must be a strict remainder and
// must be zero, so no information is silently dropped.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := 0
	bits := uint(0)
	maxv := 1<<toBits - 1
	maxAcc := 1<<(fromBits+toBits-1) - 1
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for _, v := range data {
		if int(v)>>fromBits != 0 {
			return nil, fmt.Errorf("value %d does not fit in %d bits", v, fromBits)
		}
		acc = (acc<<fromBits | int(v)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits {
		return nil, errors.New("excess padding")
	} else if acc<<(toBits-bits)&maxv != 0 {
		return nil, errors.New("non-zero padding")
	}
	return ret, nil
}
