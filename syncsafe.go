package id3

// decodeSyncSafe4 decodes a 4-byte sync-safe integer: each byte holds 7 bits
// of the value with its high bit clear. It reports ok=false if any byte has
// its high bit set, which the spec treats as an invalid (rejected) size.
func decodeSyncSafe4(b [4]byte) (value int, ok bool) {
	for _, x := range b {
		if x&0x80 != 0 {
			return 0, false
		}
	}
	return int(b[0])<<21 | int(b[1])<<14 | int(b[2])<<7 | int(b[3]), true
}

// encodeSyncSafe4 is the inverse of decodeSyncSafe4, used by the encoder.
func encodeSyncSafe4(v int) [4]byte {
	return [4]byte{
		byte((v >> 21) & 0x7f),
		byte((v >> 14) & 0x7f),
		byte((v >> 7) & 0x7f),
		byte(v & 0x7f),
	}
}

// decodeBigEndian4 decodes a plain (non-sync-safe) 4-byte big-endian size,
// used by the ID3v2.3 frame header and extended header.
func decodeBigEndian4(b [4]byte) int {
	return int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
}

func encodeBigEndian4(v int) [4]byte {
	return [4]byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}
}

// decodeSyncSafe35 decodes the 5-byte, 35-bit sync-safe CRC-32 value used by
// the ID3v2.4 extended header's CRC sub-field: each byte is shifted by
// (28, 21, 14, 7, 0) and OR-ed together.
func decodeSyncSafe35(b [5]byte) uint64 {
	return uint64(b[0])<<28 | uint64(b[1])<<21 | uint64(b[2])<<14 | uint64(b[3])<<7 | uint64(b[4])
}
