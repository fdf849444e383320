package suffixstack

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// TheBit returns a uint64 with the bit'th (counting from the right) bit set.
func TheBit(bit uint64) uint64 { return uint64(1) << bit }

// TrailingZeros64 returns the number of trailing zero bits in num. The result
// for num == 0 is 64; callers guard.
func TrailingZeros64(num uint64) uint64 {
	return uint64(bits.TrailingZeros64(num))
}

// IsPow2 determins if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	if size == 0 {
		return false
	}
	return size&(size-1) == 0
}
