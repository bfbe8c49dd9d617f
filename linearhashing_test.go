package linearhashing

import (
	"bytes"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type fixedAddressAlgorithm struct {
	address int64
	m       int64
}

func (F *fixedAddressAlgorithm) SetInitialBuckets(m int64) { F.m = m }

func (F *fixedAddressAlgorithm) Address(level int, key int64) int64 { return F.address }

func TestCreate(t *testing.T) {
	t.Run("creates table", func(t *testing.T) {
		// Execute
		table, err := Create(10, 4, 0.7, 0.5)

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, int64(10), table.Buckets(), "m buckets")
		assert.Equal(t, int64(10), table.Pages(), "one head page per bucket")
		assert.Equal(t, int64(0), table.Len(), "no keys")
		assert.Equal(t, 0, table.Level(), "level 0")
		assert.Equal(t, int64(0), table.SplitPointer(), "split pointer 0")
		assert.Equal(t, 4, table.PageCapacity(), "page capacity")
		assert.Equal(t, 0.0, table.LoadFactor(), "empty table")
		assert.Equal(t, model.TableParameters{InitialBuckets: 10, PageCapacity: 4, AlphaMax: 0.7, AlphaMin: 0.5}, table.Parameters(), "parameters kept")
		checkStructure(t, table)
	})

	t.Run("page count follows initial buckets", func(t *testing.T) {
		// Execute
		table, err := Create(3, 2, 0.7, 0.5)

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, int64(3), table.Buckets(), "3 buckets")
		assert.Equal(t, int64(3), table.Pages(), "one head page per bucket")
		checkStructure(t, table)

		// 5 keys in 3 pages of 2 slots is 5/6, above alphaMax, so one split must follow
		for k := int64(0); k < 5; k++ {
			require.NoError(t, table.Insert(k))
			checkLoadFactor(t, table)
		}
		assert.Greater(t, table.Buckets(), int64(3), "split triggered from the real page count")
		checkStructure(t, table)
	})

	t.Run("error when supplying invalid parameters", func(t *testing.T) {
		tests := []struct {
			name           string
			initialBuckets int
			pageCapacity   int
			alphaMax       float64
			alphaMin       float64
		}{
			{"zero initial buckets", 0, 4, 0.7, 0.5},
			{"negative initial buckets", -3, 4, 0.7, 0.5},
			{"zero page capacity", 10, 0, 0.7, 0.5},
			{"negative page capacity", 10, -1, 0.7, 0.5},
			{"zero alphaMax", 10, 4, 0, 0},
			{"negative alphaMin", 10, 4, 0.7, -0.1},
			{"alphaMin above alphaMax", 10, 4, 0.7, 0.8},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Execute
				table, err := Create(tt.initialBuckets, tt.pageCapacity, tt.alphaMax, tt.alphaMin)

				// Check
				assert.ErrorAs(t, err, &ConfigurationError{}, "configuration error")
				assert.Nil(t, table, "no table constructed")
			})
		}
	})
}

func TestNewTable(t *testing.T) {
	t.Run("creates table from default conf", func(t *testing.T) {
		// Execute
		table, err := NewTable(DefaultConf())

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, model.TableParameters{InitialBuckets: 10, PageCapacity: 4, AlphaMax: 0.7, AlphaMin: 0.5}, table.Parameters(), "default parameters")

		stat, err := table.Stat(false)
		require.NoError(t, err)
		assert.True(t, stat.InternalAlgorithm, "internal address algorithm")
	})

	t.Run("uses custom address algorithm", func(t *testing.T) {
		// Prepare
		alg := &fixedAddressAlgorithm{address: 3}
		c := DefaultConf()
		c.AddressAlgorithm = alg

		// Execute
		table, err := NewTable(c)

		// Check
		require.NoError(t, err, "creates table")
		assert.Equal(t, int64(10), alg.m, "initial buckets handed to algorithm")

		require.NoError(t, table.Insert(42), "inserts key")
		bucketNo, err := table.GetBucketNo(42)
		require.NoError(t, err)
		assert.Equal(t, int64(3), bucketNo, "custom address used")

		stat, err := table.Stat(true)
		require.NoError(t, err)
		assert.False(t, stat.InternalAlgorithm, "external address algorithm")
		assert.Equal(t, int64(1), stat.BucketDistribution[3], "key in bucket 3")
	})

	t.Run("error when custom address algorithm leaves the address space", func(t *testing.T) {
		// Prepare
		c := DefaultConf()
		c.AddressAlgorithm = &fixedAddressAlgorithm{address: 1000}
		table, err := NewTable(c)
		require.NoError(t, err)

		// Execute
		errInsert := table.Insert(1)
		_, errSearch := table.Search(1)

		// Check
		assert.ErrorAs(t, errInsert, &AddressOutOfRange{}, "insert refused")
		assert.ErrorAs(t, errSearch, &AddressOutOfRange{}, "search refused")
		assert.Equal(t, int64(0), table.Len(), "nothing stored")
	})
}

func TestTable_Destroy(t *testing.T) {
	t.Run("releases everything", func(t *testing.T) {
		// Prepare
		table, err := Create(4, 2, 0.7, 0.5)
		require.NoError(t, err)
		for k := int64(0); k < 100; k++ {
			require.NoError(t, table.Insert(k))
		}

		// Execute
		err = table.Destroy()

		// Check
		assert.NoError(t, err, "every page reached from a bucket")
		assert.Equal(t, int64(0), table.Pages(), "no pages")
		assert.Equal(t, int64(0), table.Len(), "no keys")
		assert.Equal(t, int64(0), table.Buckets(), "no buckets")
		assert.Equal(t, int64(0), table.arena.Live(), "arena empty")
	})

	t.Run("error when using a destroyed table", func(t *testing.T) {
		// Prepare
		table, err := Create(4, 2, 0.7, 0.5)
		require.NoError(t, err)
		require.NoError(t, table.Destroy())

		// Execute
		errInsert := table.Insert(1)
		_, errSearch := table.Search(1)
		_, errStat := table.Stat(false)
		_, errMax := table.MaxChainLength()
		errDisplay := table.Display(&bytes.Buffer{})

		// Check
		assert.ErrorIs(t, errInsert, TableDestroyed{}, "insert fails")
		assert.ErrorIs(t, errSearch, TableDestroyed{}, "search fails")
		assert.ErrorIs(t, errStat, TableDestroyed{}, "stat fails")
		assert.ErrorIs(t, errMax, TableDestroyed{}, "max chain length fails")
		assert.ErrorIs(t, errDisplay, TableDestroyed{}, "display fails")
	})

	t.Run("error when pages are not reachable from any bucket", func(t *testing.T) {
		// Prepare
		table, err := Create(4, 2, 0.7, 0.5)
		require.NoError(t, err)
		_ = table.arena.Alloc()

		// Execute
		err = table.Destroy()

		// Check
		assert.Error(t, err, "stray page reported")
		assert.Equal(t, int64(0), table.arena.Live(), "everything released anyway")
		assert.ErrorIs(t, table.Insert(1), TableDestroyed{}, "table destroyed")
	})

	t.Run("error when a bucket chain is broken", func(t *testing.T) {
		// Prepare
		table, err := Create(2, 1, 1000, 0)
		require.NoError(t, err)
		require.NoError(t, table.Insert(0))
		require.NoError(t, table.Insert(2))
		head, err := table.arena.Page(table.buckets[0].Head)
		require.NoError(t, err)
		require.NoError(t, table.arena.Free(head.Next))

		// Execute
		err = table.Destroy()

		// Check
		assert.ErrorAs(t, err, &storage.InvalidHandle{}, "broken chain reported")
		assert.Equal(t, int64(0), table.arena.Live(), "everything released anyway")
	})

	t.Run("destroy twice is harmless", func(t *testing.T) {
		// Prepare
		table, err := Create(4, 2, 0.7, 0.5)
		require.NoError(t, err)

		// Execute & Check
		assert.NotPanics(t, func() {
			assert.NoError(t, table.Destroy(), "first destroy")
			assert.NoError(t, table.Destroy(), "second destroy")
		})
	})
}
