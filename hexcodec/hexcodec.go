// Package hexcodec converts between ASCII hex text and bitbuf storage.
package hexcodec

import (
	"encoding/hex"
	"fmt"

	"github.com/oddbits/bitkit/bitbuf"
	"github.com/oddbits/bitkit/shared"
)

// DecodeBytes converts hex text into dst, most-significant nibble first,
// and returns the number of bytes produced. Odd-length input keeps the
// historical convention: the first character is decoded alone into the low
// nibble of the first byte before pairing resumes, so "abc" decodes to
// 0x0a, 0xbc. A character outside [0-9a-fA-F] fails with
// shared.InvalidDigitError; a dst shorter than ceil(len(text)/2) bytes
// fails with shared.ErrBufferTooSmall.
func DecodeBytes(dst []byte, text string) (int, error) {
	need := (len(text) + 1) / 2
	if len(dst) < need {
		return 0, fmt.Errorf("%w: %d bytes for %d decoded", shared.ErrBufferTooSmall, len(dst), need)
	}

	i, j := 0, 0
	if len(text)%2 == 1 {
		v, ok := digitVal(text[0])
		if !ok {
			return 0, shared.InvalidDigitError{Pos: 0, Char: text[0]}
		}
		dst[j] = v
		j++
		i = 1
	}

	for i < len(text) {
		hi, ok := digitVal(text[i])
		if !ok {
			return 0, shared.InvalidDigitError{Pos: i, Char: text[i]}
		}
		lo, ok := digitVal(text[i+1])
		if !ok {
			return 0, shared.InvalidDigitError{Pos: i + 1, Char: text[i+1]}
		}
		dst[j] = hi<<4 | lo
		j++
		i += 2
	}

	return j, nil
}

// DecodeInto rebinds buf to hold the bytes decoded from text and fills it.
// Returns the number of bits filled.
func DecodeInto(buf *bitbuf.Buffer, text string) (uint, error) {
	nbytes := uint(len(text)+1) / 2
	if err := buf.Rebind(nil, nbytes*shared.BitsPerByte); err != nil {
		return 0, err
	}
	if nbytes == 0 {
		return 0, nil
	}

	scratch := make([]byte, nbytes)
	if _, err := DecodeBytes(scratch, text); err != nil {
		return 0, err
	}

	return buf.Fill(scratch)
}

// Decode returns a new buffer holding the bytes decoded from text.
func Decode(text string) (*bitbuf.Buffer, error) {
	buf, err := bitbuf.New(0)
	if err != nil {
		return nil, err
	}
	if _, err := DecodeInto(buf, text); err != nil {
		return nil, err
	}
	return buf, nil
}

// Encode renders the buffer's bytes as lowercase hex digit pairs.
func Encode(buf *bitbuf.Buffer) string {
	return hex.EncodeToString(buf.Bytes())
}

func digitVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
