package hash

import "github.com/gostonefire/linearhashing/hashfunc"

// ModuloAddressAlgorithm - The internally used address algorithm, bucket = key mod (2^level * m).
// Negative keys use the Euclidean convention so the result is always in [0, 2^level * m), e.g. with
// 2^level * m = 10 the key -3 lands in bucket 7.
type ModuloAddressAlgorithm struct {
	m int64
}

// NewModuloAddressAlgorithm - Returns a pointer to a new ModuloAddressAlgorithm instance
func NewModuloAddressAlgorithm(m int64) *ModuloAddressAlgorithm {
	ha := &ModuloAddressAlgorithm{}
	ha.SetInitialBuckets(m)
	return ha
}

// SetInitialBuckets - Sets the number of buckets at level 0
func (M *ModuloAddressAlgorithm) SetInitialBuckets(m int64) {
	M.m = m
}

// Address - Given level and key it generates a bucket address between 0 and 2^level * m - 1
func (M *ModuloAddressAlgorithm) Address(level int, key int64) int64 {
	size := AddressSpaceSize(level, M.m)
	r := key % size
	if r < 0 {
		r += size
	}

	return r
}

// AddressSpaceSize - Returns 2^level * m, the number of addressable buckets at level
func AddressSpaceSize(level int, m int64) int64 {
	return (int64(1) << level) * m
}

// BucketNumber - Returns the bucket for key given current level and split pointer. Buckets below the split
// pointer have already been split in this round and are addressed at level + 1.
func BucketNumber(alg hashfunc.AddressAlgorithm, level int, splitPointer int64, key int64) int64 {
	bucketNo := alg.Address(level, key)
	if bucketNo < splitPointer {
		bucketNo = alg.Address(level+1, key)
	}

	return bucketNo
}
