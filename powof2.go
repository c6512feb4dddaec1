package primes

import "math/bits"

// IsPow2 determines if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	return size != 0 && size&(size-1) == 0
}

// NextPow2 returns the smallest power of two >= n. NextPow2(0) is 1.
//
// For n above 1<<63 the result is not representable and wraps to zero;
// callers sizing real allocations fail long before that point.
func NextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}
