package shared

// BytesForBits returns the number of bytes needed to hold nbits bits.
func BytesForBits(nbits uint) uint {
	return (nbits + BitsPerByte - 1) / BitsPerByte
}

func Min(x, y uint) uint {
	if x < y {
		return x
	}
	return y
}
