// Package combine builds new buffers out of pairs of existing ones.
package combine

import (
	"github.com/oddbits/bitkit/bitbuf"
	"github.com/oddbits/bitkit/shared"
)

// Xor returns a new buffer whose bytes are the byte-wise XOR of a and b.
// The operands must have equal bit lengths; otherwise the call fails with
// shared.LengthMismatchError and no partial result is produced.
func Xor(a, b *bitbuf.Buffer) (*bitbuf.Buffer, error) {
	if a.BitLen() != b.BitLen() {
		return nil, shared.LengthMismatchError{LenA: a.BitLen(), LenB: b.BitLen()}
	}

	out, err := bitbuf.New(a.BitLen())
	if err != nil {
		return nil, err
	}

	ab, bb, ob := a.Bytes(), b.Bytes(), out.Bytes()
	for i := range ob {
		ob[i] = ab[i] ^ bb[i]
	}

	return out, nil
}
