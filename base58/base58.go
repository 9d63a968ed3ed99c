// Package base58 implements the bitcoind flavor of base58 used by
// base58-check addresses. Decoding is fixed width: the caller picks the
// output length, and high-order bytes that do not fit are dropped rather
// than reported, matching bitcoind instead of general-purpose base58.
package base58

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Alphabet is bitcoin's base58 digit set. 0, O, I and l are excluded to
// avoid visually ambiguous addresses.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ChecksumSize is the length of the checksum trailing a base58-check payload.
const ChecksumSize = 4

// ErrInvalidCharacter is returned by Decode when a character is not part of
// Alphabet.
var ErrInvalidCharacter = errors.New("character not part of bitcoin's base58")

var digitIndex = func() (idx [128]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = int8(i)
	}
	return idx
}()

var radix = big.NewInt(58)

// Decode interprets s as a base58 numeral and serializes it big-endian into
// exactly length bytes, zero padded on the left. If the numeral needs more
// than length bytes, the high-order bytes are dropped; callers that care
// must check the Encode round trip.
func Decode(s string, length int) ([]byte, error) {
	n := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || digitIndex[c] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(c))
		}
		digit.SetInt64(int64(digitIndex[c]))
		n.Mul(n, radix)
		n.Add(n, digit)
	}
	raw := n.Bytes()
	if len(raw) > length {
		raw = raw[len(raw)-length:]
	}
	out := make([]byte, length)
	copy(out[length-len(raw):], raw)
	return out, nil
}

// Encode returns the base58 representation of b. Leading zero bytes encode
// as leading '1' digits.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}
	n := new(big.Int).SetBytes(b)
	mod := new(big.Int)
	out := make([]byte, 0, len(b)*137/100+1)
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, '1')
	}
	// digits were produced least significant first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Checksum returns the 4-byte base58-check checksum of b, the leading
// bytes of sha256(sha256(b)).
func Checksum(b []byte) []byte {
	return chainhash.DoubleHashB(b)[:ChecksumSize]
}
