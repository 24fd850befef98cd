// Package bitbuf provides a growable byte buffer addressable at bit
// granularity, following the network bit order, where the most-significant
// bit of a value occupies the lowest bit offset within its byte.
package bitbuf

import (
	"fmt"

	"github.com/oddbits/bitkit/shared"
)

// Buffer owns a contiguous byte sequence sized to hold a logical number of
// bits. Storage is nil exactly when the bit length is zero; otherwise it
// spans ceil(bitLen/8) bytes. Bits past the logical length within the last
// byte carry no meaning.
//
// A Buffer is not safe for concurrent use; resizing and mutation require
// external exclusive access.
type Buffer struct {
	bitLen uint
	data   []byte
}

// New returns a Buffer with storage for nbits bits, zero-filled, or an
// empty Buffer when nbits is zero. Requests past the allocation ceiling
// fail with shared.ErrAllocation.
func New(nbits uint) (*Buffer, error) {
	if nbits > shared.MaxBufferBits {
		return nil, fmt.Errorf("%w: %d bits requested, ceiling is %d",
			shared.ErrAllocation, nbits, uint(shared.MaxBufferBits))
	}

	b := new(Buffer)
	if nbits > 0 {
		b.data = make([]byte, shared.BytesForBits(nbits))
	}
	b.bitLen = nbits

	return b, nil
}

// Rebind replaces the buffer's storage and logical length in one step.
//
// With non-nil storage the buffer adopts it, taking ownership; prior
// storage is dropped. With nil storage and nbits > 0 the existing storage
// is resized: contents are preserved up to the smaller of the old and new
// byte counts and any extension is zero-filled. With nbits == 0 the
// storage is released and the buffer becomes empty, on either path.
//
// The allocation ceiling applies to every rebind. On failure the buffer
// is emptied rather than left half-bound, so a later GetBits fails
// instead of reading stale storage.
func (b *Buffer) Rebind(storage []byte, nbits uint) error {
	if nbits == 0 {
		b.data = nil
		b.bitLen = 0
		return nil
	}

	if nbits > shared.MaxBufferBits {
		b.data = nil
		b.bitLen = 0
		return fmt.Errorf("%w: %d bits requested, ceiling is %d",
			shared.ErrAllocation, nbits, uint(shared.MaxBufferBits))
	}

	if storage != nil {
		if uint(len(storage)) < shared.BytesForBits(nbits) {
			b.data = nil
			b.bitLen = 0
			return fmt.Errorf("%w: %d bytes supplied, %d bits need %d",
				shared.ErrBufferTooSmall, len(storage), nbits, shared.BytesForBits(nbits))
		}
		b.data = storage
		b.bitLen = nbits
		return nil
	}

	resized := make([]byte, shared.BytesForBits(nbits))
	copy(resized, b.data)
	b.data = resized
	b.bitLen = nbits

	return nil
}

// PutBits writes the low nbits (1 to 8) of value into the buffer starting
// at bit offset, packed most-significant-bit-first, so writing 3 bits 101b
// at a byte-aligned offset yields 101xxxxxb with the x bits untouched. A
// write may span two adjacent bytes.
//
// The logical bit length is not consulted; bounding writes against it is
// the caller's concern, unlike GetBits. The backing storage is bounded:
// a write past it fails with shared.ErrOutOfRange. Returns the number of
// bits written.
func (b *Buffer) PutBits(value byte, offset, nbits uint) (uint, error) {
	if err := checkWidth(nbits); err != nil {
		return 0, err
	}
	if offset > shared.MaxBufferBits || shared.BytesForBits(offset+nbits) > uint(len(b.data)) {
		return 0, fmt.Errorf("%w: write of %d bits at offset %d exceeds %d bytes of storage",
			shared.ErrOutOfRange, nbits, offset, len(b.data))
	}

	i := offset / shared.BitsPerByte
	j := offset % shared.BitsPerByte

	if nbits < shared.BitsPerByte {
		value <<= shared.BitsPerByte - nbits
	}

	cur := shared.Min(shared.BitsPerByte-j, nbits)
	mask := byte(0xFF>>j) & byte(0xFF<<(shared.BitsPerByte-(j+cur)))
	b.data[i] = b.data[i]&^mask | (value>>j)&mask
	written := cur

	if cur < nbits {
		rem := nbits - cur
		value <<= cur
		mask = 0xFF << (shared.BitsPerByte - rem)
		b.data[i+1] = b.data[i+1]&^mask | value&mask
		written += rem
	}

	return written, nil
}

// GetBits reads nbits (1 to 8) bits starting at bit offset, right-aligned
// into the low bits of the result, together with the number of bits read.
// Reads past the logical bit length fail with shared.ErrOutOfRange and
// read zero bits.
func (b *Buffer) GetBits(offset, nbits uint) (byte, uint, error) {
	if err := checkWidth(nbits); err != nil {
		return 0, 0, err
	}
	if offset >= b.bitLen || nbits > b.bitLen-offset {
		return 0, 0, fmt.Errorf("%w: read of %d bits at offset %d exceeds bit length %d",
			shared.ErrOutOfRange, nbits, offset, b.bitLen)
	}

	i := offset / shared.BitsPerByte
	j := offset % shared.BitsPerByte

	cur := shared.Min(shared.BitsPerByte-j, nbits)
	mask := byte(0xFF>>j) & byte(0xFF<<(shared.BitsPerByte-(j+cur)))
	value := (b.data[i] & mask) << j
	read := cur

	if cur < nbits {
		rem := nbits - cur
		mask = 0xFF << (shared.BitsPerByte - rem)
		value |= (b.data[i+1] & mask) >> (shared.BitsPerByte - j)
		read += rem
	}

	if nbits < shared.BitsPerByte {
		value >>= shared.BitsPerByte - nbits
	}

	return value, read, nil
}

// Fill copies successive 8-bit groups from src into the buffer starting at
// bit offset zero until the logical bit length is covered. src must hold
// at least ceil(BitLen/8) bytes. Returns the number of bits written, at
// most BitLen.
func (b *Buffer) Fill(src []byte) (uint, error) {
	if uint(len(src)) < shared.BytesForBits(b.bitLen) {
		return 0, fmt.Errorf("%w: %d source bytes for %d bits",
			shared.ErrBufferTooSmall, len(src), b.bitLen)
	}

	var copied uint
	for k := 0; copied < b.bitLen; k++ {
		n, err := b.PutBits(src[k], copied, shared.BitsPerByte)
		if err != nil {
			return copied, err
		}
		copied += n
	}

	return shared.Min(copied, b.bitLen), nil
}

// BitLen returns the logical number of valid bits.
func (b *Buffer) BitLen() uint { return b.bitLen }

// ByteLen returns the number of bytes backing the buffer.
func (b *Buffer) ByteLen() uint { return uint(len(b.data)) }

// Bytes exposes the backing storage. The slice is shared with the buffer
// and stays valid until the next Rebind or Release.
func (b *Buffer) Bytes() []byte { return b.data }

// Release drops the storage and marks the buffer empty. Subsequent reads
// fail until the buffer is rebound.
func (b *Buffer) Release() {
	b.data = nil
	b.bitLen = 0
}

func checkWidth(nbits uint) error {
	if nbits < 1 || nbits > shared.BitsPerByte {
		return fmt.Errorf("%w: width %d outside [1,8]", shared.ErrOutOfRange, nbits)
	}
	return nil
}
