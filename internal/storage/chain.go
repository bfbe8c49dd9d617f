package storage

import (
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/pkg/errors"
)

// InsertInChain - Stores key in the first free slot of the chain starting at head. If every page in the chain
// is full a new overflow page is allocated and linked at the tail.
//   - head is the handle of the bucket head page
//   - key is the key to store, duplicates are stored again
//
// It returns:
//   - allocated is true if a new overflow page had to be added to the chain
//   - err is an error of type InvalidHandle (wrapped) if the chain is broken
func (A *Arena) InsertInChain(head int64, key int64) (allocated bool, err error) {
	handle := head
	for {
		var page *model.Page
		page, err = A.Page(handle)
		if err != nil {
			err = errors.Wrapf(err, "insert key %d in chain from page %d", key, head)
			return
		}

		if !page.IsFull() {
			storeInPage(page, key)
			return
		}

		if page.Next == NilHandle {
			break
		}
		handle = page.Next
	}

	// Chain exhausted, link a new page at the tail
	ovfl := A.Alloc()
	tail := A.pages[handle]
	page := A.pages[ovfl]
	tail.Next = ovfl
	page.Previous = handle
	storeInPage(page, key)
	allocated = true

	return
}

// RemoveInPage - Clears the first slot in the page holding key. The page is never freed here, even if it ends up
// empty, that is left to Unlink.
//
// It returns:
//   - removed is true if a slot held the key
//   - err is an error of type InvalidHandle (wrapped) if handle is not a live page
func (A *Arena) RemoveInPage(handle int64, key int64) (removed bool, err error) {
	page, err := A.Page(handle)
	if err != nil {
		err = errors.Wrapf(err, "remove key %d from page %d", key, handle)
		return
	}

	for i := range page.Slots {
		if page.Slots[i].State == model.SlotOccupied && page.Slots[i].Key == key {
			page.Slots[i] = model.Slot{State: model.SlotEmpty}
			page.NKeys--
			removed = true
			return
		}
	}

	return
}

// Unlink - Detaches an overflow page from its chain and frees it. Head pages have no previous page and are
// refused, they live as long as their bucket.
func (A *Arena) Unlink(handle int64) (err error) {
	page, err := A.Page(handle)
	if err != nil {
		return errors.Wrap(err, "unlink")
	}
	if page.Previous == NilHandle {
		return errors.Errorf("unlink: page %d is a chain head", handle)
	}

	prev, err := A.Page(page.Previous)
	if err != nil {
		return errors.Wrapf(err, "unlink: previous of page %d", handle)
	}
	prev.Next = page.Next

	if page.Next != NilHandle {
		var next *model.Page
		next, err = A.Page(page.Next)
		if err != nil {
			return errors.Wrapf(err, "unlink: next of page %d", handle)
		}
		next.Previous = page.Previous
	}

	return A.Free(handle)
}

// ChainLength - Returns the number of pages in the chain starting at head
func (A *Arena) ChainLength(head int64) (length int, err error) {
	iter := NewPages(A, head)
	for iter.HasNext() {
		if _, _, err = iter.Next(); err != nil {
			return
		}
		length++
	}

	return
}

// FreeChain - Frees every page of the chain starting at head, head included
func (A *Arena) FreeChain(head int64) (err error) {
	iter := NewPages(A, head)
	for iter.HasNext() {
		var handle int64
		handle, _, err = iter.Next()
		if err != nil {
			return
		}
		if err = A.Free(handle); err != nil {
			return
		}
	}

	return
}

// storeInPage - Puts key in the first empty slot of a page known to have room
func storeInPage(page *model.Page, key int64) {
	for i := range page.Slots {
		if page.Slots[i].State == model.SlotEmpty {
			page.Slots[i] = model.Slot{State: model.SlotOccupied, Key: key}
			page.NKeys++
			return
		}
	}
}
