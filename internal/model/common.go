package model

// TableParameters - Represents the parameters a table was created with
//   - InitialBuckets is the number of buckets (m) at level 0
//   - PageCapacity is the number of key slots per page
//   - AlphaMax is the load factor above which a bucket is split
//   - AlphaMin is the lower load factor bound, kept for reporting only
type TableParameters struct {
	InitialBuckets int64
	PageCapacity   int
	AlphaMax       float64
	AlphaMin       float64
}
