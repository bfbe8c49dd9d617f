package linearhashing

import (
	"fmt"
	"github.com/gostonefire/linearhashing/internal/hash"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"github.com/pkg/errors"
)

// split - Splits the bucket at the split pointer. A new bucket is appended at 2^level * m + split pointer and
// every key of the old bucket whose level + 1 address differs from the old bucket is moved there, page by page
// and slot by slot. An overflow page emptied while being processed is unlinked and freed right away, the head
// page stays even if empty. Finally the split pointer advances, wrapping to 0 and bumping the level when the
// address space has been covered.
func (T *Table) split() (err error) {
	size := hash.AddressSpaceSize(T.level, T.m)
	oldNo := T.splitPointer
	newNo := size + oldNo

	if newNo != int64(len(T.buckets)) {
		return errors.Errorf("bucket vector out of step, expected %d buckets but have %d", newNo, len(T.buckets))
	}
	T.buckets = append(T.buckets, model.Bucket{Head: T.arena.Alloc()})
	T.nPages++

	head := T.buckets[oldNo].Head
	iter := storage.NewPages(T.arena, head)
	for iter.HasNext() {
		var handle int64
		var page *model.Page
		handle, page, err = iter.Next()
		if err != nil {
			return
		}

		for i := range page.Slots {
			if page.Slots[i].State != model.SlotOccupied {
				continue
			}
			key := page.Slots[i].Key

			target := T.addressAlg.Address(T.level+1, key)
			if target == oldNo {
				continue
			}
			if target != newNo {
				return AddressOutOfRange{msg: fmt.Sprintf("address algorithm moved key %d from bucket %d to %d, expected %d", key, oldNo, target, newNo)}
			}

			if err = T.insertInBucket(newNo, key); err != nil {
				return
			}
			if err = T.removeInPage(oldNo, handle, key); err != nil {
				return
			}
		}

		err = T.reclaim(head, handle, page)
		if err != nil {
			return
		}
	}

	T.splitPointer++
	if T.splitPointer == size {
		T.splitPointer = 0
		T.level++
	}

	return
}

// reclaim - Frees page if it was emptied and is not the bucket head. Only the given page is considered,
// the rest of the chain is left as is.
func (T *Table) reclaim(head, handle int64, page *model.Page) (err error) {
	if handle == head || !page.IsEmpty() {
		return
	}

	if err = T.arena.Unlink(handle); err != nil {
		return
	}
	T.nPages--

	return
}
