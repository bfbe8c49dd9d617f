package hashfunc

// AddressAlgorithm - Interface that permits a caller of the linear hashing Table to supply a custom address
// function. The Table evaluates it the same way for Insert, Search and bucket splits, so any implementation
// must be deterministic.
type AddressAlgorithm interface {
	// SetInitialBuckets - Sets the number of buckets (m) the table was created with.
	// It is called once when the table is created, any value set before that is overwritten.
	//   - m is the number of buckets at level 0
	SetInitialBuckets(m int64)

	// Address - Given level and key it generates a bucket address between 0 and 2^level * m - 1.
	// Any number returned outside that range results in an error of type AddressOutOfRange down stream.
	Address(level int, key int64) int64
}
