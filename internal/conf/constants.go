package conf

// DefaultInitialBuckets - Number of buckets (m) a table starts with when nothing else is configured
const DefaultInitialBuckets int = 10

// DefaultPageCapacity - Number of key slots per page when nothing else is configured
const DefaultPageCapacity int = 4

// DefaultAlphaMax - Load factor above which buckets are split when nothing else is configured
const DefaultAlphaMax float64 = 0.7

// DefaultAlphaMin - Lower load factor bound when nothing else is configured
const DefaultAlphaMin float64 = 0.5

// DefaultDriverKeys - Number of generated keys the driver inserts when no key file is given
const DefaultDriverKeys int = 50
