package linearhashing

import (
	"github.com/gostonefire/linearhashing/internal/hash"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// checkStructure - Walks every bucket chain and checks the structural invariants of the table
func checkStructure(t *testing.T, table *Table) {
	t.Helper()

	size := hash.AddressSpaceSize(table.level, table.m)
	assert.GreaterOrEqual(t, table.splitPointer, int64(0), "split pointer not negative")
	assert.Less(t, table.splitPointer, size, "split pointer below address space size")
	assert.Equal(t, size+table.splitPointer, int64(len(table.buckets)), "one bucket per address")
	assert.Equal(t, table.arena.Live(), table.nPages, "page counter matches arena")

	var keys, pages int64
	for bucketNo, bucket := range table.buckets {
		var bucketKeys int64
		iter := storage.NewPages(table.arena, bucket.Head)
		for iter.HasNext() {
			handle, page, err := iter.Next()
			require.NoError(t, err, "walks chain")
			pages++

			var occupied int
			for _, slot := range page.Slots {
				if slot.State != model.SlotOccupied {
					continue
				}
				occupied++
				addr, err := table.GetBucketNo(slot.Key)
				require.NoError(t, err, "addresses key")
				assert.Equalf(t, int64(bucketNo), addr, "key %d stored in the bucket it addresses to", slot.Key)
			}
			assert.Equal(t, occupied, page.NKeys, "occupied count matches slots")
			if handle != bucket.Head {
				assert.Greaterf(t, page.NKeys, 0, "overflow page %d of bucket %d not empty", handle, bucketNo)
			}
			bucketKeys += int64(page.NKeys)
		}
		assert.Equalf(t, bucket.NKeys, bucketKeys, "bucket %d key counter", bucketNo)
		keys += bucketKeys
	}
	assert.Equal(t, table.nKeys, keys, "table key counter")
	assert.Equal(t, table.nPages, pages, "every page reachable from a bucket")
}

// checkLoadFactor - Checks that the table is not loaded above alphaMax
func checkLoadFactor(t *testing.T, table *Table) {
	t.Helper()
	assert.LessOrEqual(t, table.LoadFactor(), table.alphaMax, "load factor at or below alphaMax")
}
