package shared

const (
	BitsPerByte = 8

	// MaxBufferBits caps a single buffer allocation (128 MiB of storage).
	// This also protects the bit-offset arithmetic against uint overflow,
	// since offsets stay within 3 bit shifts of the byte count.
	MaxBufferBits = 1 << 30
)
