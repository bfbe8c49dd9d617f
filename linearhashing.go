package linearhashing

import (
	"fmt"
	"github.com/gostonefire/linearhashing/hashfunc"
	"github.com/gostonefire/linearhashing/internal/conf"
	"github.com/gostonefire/linearhashing/internal/hash"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"github.com/pkg/errors"
)

// Conf - Is a struct used in the call to NewTable holding the table configuration.
//   - InitialBuckets is the number of buckets (m) at level 0, must be higher than 0 (zero)
//   - PageCapacity is the number of key slots in each page, must be higher than 0 (zero)
//   - AlphaMax is the load factor above which buckets are split, must be higher than 0 (zero)
//   - AlphaMin is the lower load factor bound, stored and reported but no shrinking takes place
//   - AddressAlgorithm is an optional entry to provide a custom address function following the hashfunc.AddressAlgorithm interface
type Conf struct {
	InitialBuckets   int
	PageCapacity     int
	AlphaMax         float64
	AlphaMin         float64
	AddressAlgorithm hashfunc.AddressAlgorithm
}

// DefaultConf - Returns a Conf with 10 initial buckets, 4 keys per page and load factor bounds 0.7 / 0.5
func DefaultConf() Conf {
	return Conf{
		InitialBuckets: conf.DefaultInitialBuckets,
		PageCapacity:   conf.DefaultPageCapacity,
		AlphaMax:       conf.DefaultAlphaMax,
		AlphaMin:       conf.DefaultAlphaMin,
	}
}

// SearchResult - Outcome of a Search
//   - Found is true if the key is stored in the table
//   - PageAccesses is the number of pages visited in the bucket chain, always at least 1
type SearchResult struct {
	Found        bool
	PageAccesses int
}

// Table - The main implementation struct, an in-memory linear hashing index.
// A Table is not safe for concurrent use, callers sharing one must serialize access themselves.
type Table struct {
	addressAlg        hashfunc.AddressAlgorithm
	internalAlgorithm bool
	arena             *storage.Arena
	buckets           []model.Bucket
	m                 int64
	pageCapacity      int
	alphaMax          float64
	alphaMin          float64
	level             int
	splitPointer      int64
	nKeys             int64
	nPages            int64
	destroyed         bool
}

// Create - Returns a new table with m initial buckets, each holding one empty page.
//   - initialBuckets is the number of buckets (m) at level 0
//   - pageCapacity is the number of key slots per page
//   - alphaMax is the load factor above which a bucket is split
//   - alphaMin is the lower load factor bound
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is of type ConfigurationError if any parameter is invalid, no table is returned in that case
func Create(initialBuckets, pageCapacity int, alphaMax, alphaMin float64) (table *Table, err error) {
	return NewTable(Conf{
		InitialBuckets: initialBuckets,
		PageCapacity:   pageCapacity,
		AlphaMax:       alphaMax,
		AlphaMin:       alphaMin,
	})
}

// NewTable - Returns a new table given a Conf struct, see Create for details.
func NewTable(tableConf Conf) (table *Table, err error) {
	if err = tableConf.validate(); err != nil {
		return
	}

	// If no AddressAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.AddressAlgorithm == nil {
		tableConf.AddressAlgorithm = hash.NewModuloAddressAlgorithm(int64(tableConf.InitialBuckets))
		internalAlg = true
	} else {
		tableConf.AddressAlgorithm.SetInitialBuckets(int64(tableConf.InitialBuckets))
	}

	table = &Table{
		addressAlg:        tableConf.AddressAlgorithm,
		internalAlgorithm: internalAlg,
		arena:             storage.NewArena(tableConf.PageCapacity),
		buckets:           make([]model.Bucket, tableConf.InitialBuckets),
		m:                 int64(tableConf.InitialBuckets),
		pageCapacity:      tableConf.PageCapacity,
		alphaMax:          tableConf.AlphaMax,
		alphaMin:          tableConf.AlphaMin,
	}

	for i := range table.buckets {
		table.buckets[i].Head = table.arena.Alloc()
	}
	table.nPages = table.arena.Live()

	return
}

// validate - Checks the configuration and returns a ConfigurationError describing the first problem found
func (C Conf) validate() (err error) {
	// Check if initial buckets is valid
	if C.InitialBuckets <= 0 {
		return ConfigurationError{msg: fmt.Sprintf("initial buckets must be a positive value higher than 0 (zero), got %d", C.InitialBuckets)}
	}

	// Check if page capacity is valid
	if C.PageCapacity <= 0 {
		return ConfigurationError{msg: fmt.Sprintf("page capacity must be a positive value higher than 0 (zero), got %d", C.PageCapacity)}
	}

	// A non-positive alphaMax would have every insert split forever
	if C.AlphaMax <= 0 {
		return ConfigurationError{msg: fmt.Sprintf("alphaMax must be higher than 0 (zero), got %g", C.AlphaMax)}
	}

	if C.AlphaMin < 0 || C.AlphaMin > C.AlphaMax {
		return ConfigurationError{msg: fmt.Sprintf("alphaMin must be between 0 (zero) and alphaMax, got %g", C.AlphaMin)}
	}

	return
}

// Destroy - Releases every bucket and page owned by the table. Any later call on the table returns an error of
// type TableDestroyed. The table is released even when an error is returned.
//
// It returns:
//   - err is a wrapped internal error if a bucket chain was broken or pages were left unreachable from any bucket
func (T *Table) Destroy() (err error) {
	if T.destroyed {
		return
	}

	for bucketNo, bucket := range T.buckets {
		if freeErr := T.arena.FreeChain(bucket.Head); freeErr != nil && err == nil {
			err = errors.Wrapf(freeErr, "error while freeing bucket %d", bucketNo)
		}
	}
	if live := T.arena.Live(); live != 0 && err == nil {
		err = errors.Errorf("%d pages not reachable from any bucket", live)
	}

	T.arena.Reset()
	T.buckets = nil
	T.nKeys = 0
	T.nPages = 0
	T.destroyed = true

	return
}

// Len - Returns the number of keys stored, duplicates counted
func (T *Table) Len() int64 {
	return T.nKeys
}

// Pages - Returns the number of pages allocated, head pages included
func (T *Table) Pages() int64 {
	return T.nPages
}

// Buckets - Returns the number of buckets, that is 2^level * m + split pointer
func (T *Table) Buckets() int64 {
	return int64(len(T.buckets))
}

// Level - Returns the number of completed address space doublings
func (T *Table) Level() int {
	return T.level
}

// SplitPointer - Returns the address of the next bucket to split
func (T *Table) SplitPointer() int64 {
	return T.splitPointer
}

// PageCapacity - Returns the number of key slots per page
func (T *Table) PageCapacity() int {
	return T.pageCapacity
}

// Parameters - Returns the parameters the table was created with
func (T *Table) Parameters() model.TableParameters {
	return model.TableParameters{
		InitialBuckets: T.m,
		PageCapacity:   T.pageCapacity,
		AlphaMax:       T.alphaMax,
		AlphaMin:       T.alphaMin,
	}
}

// LoadFactor - Returns keys / (pages * page capacity)
func (T *Table) LoadFactor() float64 {
	if T.nPages == 0 {
		return 0
	}
	return float64(T.nKeys) / float64(T.nPages*int64(T.pageCapacity))
}
