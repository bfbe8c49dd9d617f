package linearhashing

import (
	"fmt"
	"github.com/gostonefire/linearhashing/internal/hash"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"github.com/pkg/errors"
)

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Keys is the total number of keys stored
//   - Pages is the total number of pages, head pages included
//   - OverflowPages is the number of pages that are not bucket heads
//   - Buckets is the number of buckets
//   - Level is the number of completed address space doublings
//   - SplitPointer is the next bucket to split
//   - LoadFactor is keys / (pages * page capacity)
//   - InternalAlgorithm is true if the table uses the built-in address algorithm
//   - BucketDistribution is the number of keys stored in each bucket
type TableStat struct {
	Keys               int64
	Pages              int64
	OverflowPages      int64
	Buckets            int64
	Level              int
	SplitPointer       int64
	LoadFactor         float64
	InternalAlgorithm  bool
	BucketDistribution []int64
}

// Insert - Adds key to the table. Duplicates are stored again, so Insert is not idempotent.
// When the load factor ends up above alphaMax the bucket at the split pointer is split, repeatedly
// until the load factor is back at or below alphaMax.
//   - key is the key to add
//
// It returns:
//   - err is of type TableDestroyed, AddressOutOfRange or a wrapped internal error, all of them fatal for the table
func (T *Table) Insert(key int64) (err error) {
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	bucketNo, err := T.GetBucketNo(key)
	if err != nil {
		return
	}

	err = T.insertInBucket(bucketNo, key)
	if err != nil {
		return
	}

	for T.LoadFactor() > T.alphaMax {
		err = T.split()
		if err != nil {
			err = errors.Wrapf(err, "error while splitting bucket %d", T.splitPointer)
			return
		}
	}

	return
}

// Search - Looks up key by walking its bucket chain.
//   - key is the key to look for
//
// It returns:
//   - result tells whether the key was found and how many pages were visited, not finding the key is not an error
//   - err is of type TableDestroyed, AddressOutOfRange or a wrapped internal error
func (T *Table) Search(key int64) (result SearchResult, err error) {
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	bucketNo, err := T.GetBucketNo(key)
	if err != nil {
		return
	}

	iter := storage.NewPages(T.arena, T.buckets[bucketNo].Head)
	for iter.HasNext() {
		var page *model.Page
		_, page, err = iter.Next()
		if err != nil {
			err = errors.Wrapf(err, "error while searching bucket %d", bucketNo)
			return
		}
		result.PageAccesses++

		for _, slot := range page.Slots {
			if slot.State == model.SlotOccupied && slot.Key == key {
				result.Found = true
				return
			}
		}
	}

	return
}

// GetBucketNo - Returns which bucket the given key is addressed to at the current level and split pointer
//   - key is the key to address
func (T *Table) GetBucketNo(key int64) (bucketNo int64, err error) {
	bucketNo = hash.BucketNumber(T.addressAlg, T.level, T.splitPointer, key)
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		err = AddressOutOfRange{msg: fmt.Sprintf("address algorithm returned bucket %d for key %d, table has %d buckets", bucketNo, key, len(T.buckets))}
		return
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice with number of keys per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	ts := TableStat{
		Keys:              T.nKeys,
		Pages:             T.nPages,
		OverflowPages:     T.nPages - int64(len(T.buckets)),
		Buckets:           int64(len(T.buckets)),
		Level:             T.level,
		SplitPointer:      T.splitPointer,
		LoadFactor:        T.LoadFactor(),
		InternalAlgorithm: T.internalAlgorithm,
	}

	if includeDistribution {
		ts.BucketDistribution = make([]int64, len(T.buckets))
		for i, bucket := range T.buckets {
			ts.BucketDistribution[i] = bucket.NKeys
		}
	}

	tableStat = &ts
	return
}

// insertInBucket - Stores key in the chain of bucketNo and keeps bucket and table counters in step
func (T *Table) insertInBucket(bucketNo, key int64) (err error) {
	allocated, err := T.arena.InsertInChain(T.buckets[bucketNo].Head, key)
	if err != nil {
		return
	}

	T.buckets[bucketNo].NKeys++
	T.nKeys++
	if allocated {
		T.nPages++
	}

	return
}

// removeInPage - Clears key from one page of bucketNo and keeps bucket and table counters in step
func (T *Table) removeInPage(bucketNo, handle, key int64) (err error) {
	removed, err := T.arena.RemoveInPage(handle, key)
	if err != nil {
		return
	}
	if !removed {
		return errors.Errorf("key %d not present in page %d of bucket %d", key, handle, bucketNo)
	}

	T.buckets[bucketNo].NKeys--
	T.nKeys--

	return
}
