package bitbuf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddbits/bitkit/bitbuf"
	"github.com/oddbits/bitkit/shared"
)

func TestNew(t *testing.T) {
	r := require.New(t)

	for _, tc := range []struct {
		nbits  uint
		nbytes uint
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{17, 3},
		{64, 8},
	} {
		b, err := bitbuf.New(tc.nbits)
		r.NoError(err)
		r.Equal(tc.nbits, b.BitLen())
		r.Equal(tc.nbytes, b.ByteLen())
		if tc.nbits == 0 {
			r.Nil(b.Bytes())
		} else {
			for _, v := range b.Bytes() {
				r.Zero(v)
			}
		}
	}
}

func TestNew_AllocationCeiling(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(shared.MaxBufferBits + 1)
	r.ErrorIs(err, shared.ErrAllocation)
	r.Nil(b)
}

func TestPutBits_Aligned(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)
	_, err = b.Fill([]byte{0xFF})
	r.NoError(err)

	// Writing 3 bits 101b at a byte-aligned offset yields 101xxxxxb.
	n, err := b.PutBits(0b101, 0, 3)
	r.NoError(err)
	r.Equal(uint(3), n)
	r.Equal(byte(0xBF), b.Bytes()[0])
}

func TestPutBits_SpansByteBoundary(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)
	_, err = b.Fill([]byte{0xAA, 0x55})
	r.NoError(err)

	n, err := b.PutBits(0xC3, 4, 8)
	r.NoError(err)
	r.Equal(uint(8), n)

	// Bit offsets 0-3 of the first byte keep their prior values.
	r.Equal(byte(0xAC), b.Bytes()[0])
	r.Equal(byte(0x35), b.Bytes()[1])

	got, n, err := b.GetBits(4, 8)
	r.NoError(err)
	r.Equal(uint(8), n)
	r.Equal(byte(0xC3), got)
}

func TestPutBits_UnalignedTail(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)

	n, err := b.PutBits(0b111, 6, 3)
	r.NoError(err)
	r.Equal(uint(3), n)
	r.Equal(byte(0x03), b.Bytes()[0])
	r.Equal(byte(0x80), b.Bytes()[1])
}

func TestPutBits_Bounds(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	_, err = b.PutBits(0xFF, 8, 1)
	r.ErrorIs(err, shared.ErrOutOfRange)
	_, err = b.PutBits(0xFF, 1, 8)
	r.ErrorIs(err, shared.ErrOutOfRange)
	_, err = b.PutBits(0xFF, 0, 0)
	r.ErrorIs(err, shared.ErrOutOfRange)
	_, err = b.PutBits(0xFF, 0, 9)
	r.ErrorIs(err, shared.ErrOutOfRange)
}

// PutBits is not bounded by the logical bit length, only by storage;
// GetBits rejects the same range. The asymmetry is part of the contract.
func TestPutGet_Asymmetry(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)
	r.NoError(b.Rebind(nil, 12))

	n, err := b.PutBits(0xFF, 8, 8)
	r.NoError(err)
	r.Equal(uint(8), n)

	_, n, err = b.GetBits(8, 8)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)
}

func TestGetBits_TopBitsOfEachByte(t *testing.T) {
	r := require.New(t)

	src := []byte{0x8F, 0x55, 0x00, 0xFF, 0x1C}
	b, err := bitbuf.New(uint(len(src)) * 8)
	r.NoError(err)
	_, err = b.Fill(src)
	r.NoError(err)

	for n := uint(1); n <= 8; n++ {
		for k := range src {
			got, read, err := b.GetBits(uint(k)*8, n)
			r.NoError(err)
			r.Equal(n, read)
			r.Equal(src[k]>>(8-n), got)
		}
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(64)
	r.NoError(err)

	for n := uint(1); n <= 8; n++ {
		value := byte(0xB5) & byte(1<<n-1)
		for offset := uint(0); offset+n <= 64; offset++ {
			written, err := b.PutBits(value, offset, n)
			r.NoError(err)
			r.Equal(n, written)

			got, read, err := b.GetBits(offset, n)
			r.NoError(err)
			r.Equal(n, read)
			r.Equal(value, got)
		}
	}
}

func TestGetBits_OutOfRange(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(12)
	r.NoError(err)

	_, n, err := b.GetBits(5, 8)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)

	_, n, err = b.GetBits(12, 1)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)

	_, n, err = b.GetBits(4, 8)
	r.NoError(err)
	r.Equal(uint(8), n)
}

// The bound check must hold even where offset+nbits would wrap uint.
func TestGetBits_HugeOffset(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)

	for _, offset := range []uint{math.MaxUint - 3, math.MaxUint, shared.MaxBufferBits} {
		_, n, err := b.GetBits(offset, 8)
		r.ErrorIs(err, shared.ErrOutOfRange)
		r.Zero(n)
	}
}

func TestRebind_Adopt(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	storage := []byte{0x01, 0x02, 0x03}
	r.NoError(b.Rebind(storage, 24))
	r.Equal(uint(24), b.BitLen())
	r.Equal(storage, b.Bytes())

	got, _, err := b.GetBits(8, 8)
	r.NoError(err)
	r.Equal(byte(0x02), got)
}

func TestRebind_AdoptTooSmall(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	err = b.Rebind(make([]byte, 2), 24)
	r.ErrorIs(err, shared.ErrBufferTooSmall)

	// The buffer is emptied, not left half-bound.
	r.Zero(b.BitLen())
	_, n, err := b.GetBits(0, 1)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)
}

// The allocation ceiling applies when adopting storage too: a bit length
// large enough to wrap the byte-count arithmetic must not bind.
func TestRebind_AdoptHugeBitLength(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	err = b.Rebind(make([]byte, 1), math.MaxUint)
	r.ErrorIs(err, shared.ErrAllocation)
	r.Zero(b.BitLen())

	_, n, err := b.GetBits(8, 8)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)
}

func TestRebind_AdoptZeroBits(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	// Storage is released regardless; bytes stay nil iff BitLen is zero.
	r.NoError(b.Rebind([]byte{0xFF}, 0))
	r.Nil(b.Bytes())
	r.Zero(b.BitLen())
}

func TestRebind_Resize(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)
	_, err = b.Fill([]byte{0xAB, 0xCD})
	r.NoError(err)

	// Growth preserves the prefix and zero-fills the extension.
	r.NoError(b.Rebind(nil, 32))
	r.Equal(uint(32), b.BitLen())
	r.Equal([]byte{0xAB, 0xCD, 0x00, 0x00}, b.Bytes())

	r.NoError(b.Rebind(nil, 8))
	r.Equal([]byte{0xAB}, b.Bytes())
}

func TestRebind_ToZeroReleasesStorage(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(16)
	r.NoError(err)
	r.NoError(b.Rebind(nil, 0))

	r.Nil(b.Bytes())
	_, n, err := b.GetBits(0, 1)
	r.ErrorIs(err, shared.ErrOutOfRange)
	r.Zero(n)
}

func TestRebind_AllocationCeiling(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)

	err = b.Rebind(nil, shared.MaxBufferBits+1)
	r.ErrorIs(err, shared.ErrAllocation)
	r.Zero(b.BitLen())
}

func TestFill(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(12)
	r.NoError(err)

	_, err = b.Fill([]byte{0xAB})
	r.ErrorIs(err, shared.ErrBufferTooSmall)

	n, err := b.Fill([]byte{0xAB, 0xCD})
	r.NoError(err)
	r.Equal(uint(12), n)
	r.Equal([]byte{0xAB, 0xCD}, b.Bytes())
}

func TestRelease(t *testing.T) {
	r := require.New(t)

	b, err := bitbuf.New(8)
	r.NoError(err)
	b.Release()

	r.Zero(b.BitLen())
	r.Nil(b.Bytes())
	_, _, err = b.GetBits(0, 1)
	r.ErrorIs(err, shared.ErrOutOfRange)
}
