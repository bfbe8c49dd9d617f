package utils

import (
	"github.com/cespare/xxhash/v2"
	"math/rand"
	"strconv"
)

// Sequence - Returns the keys 0 to n - 1 in ascending order
func Sequence(n int) (keys []int64) {
	keys = make([]int64, n)
	for i := range keys {
		keys[i] = int64(i)
	}

	return
}

// Shuffle - Permutes keys in place with the Fisher-Yates algorithm driven by rng
func Shuffle(keys []int64, rng *rand.Rand) {
	for i := len(keys) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		keys[i], keys[j] = keys[j], keys[i]
	}
}

// ParseKey - Turns a token into a fixed width key. Decimal integers are used as is, any other token is
// folded into a key using the xxhash64 checksum of its bytes.
//   - token is a non-empty piece of text, typically one word of a key file
//
// It returns:
//   - key is the resulting key
//   - numeric is true if the token was a decimal integer
func ParseKey(token string) (key int64, numeric bool) {
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return v, true
	}

	return int64(xxhash.Sum64String(token)), false
}
