package storage

import (
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/pkg/errors"
)

// NilHandle - Handle value meaning "no page", used for absent neighbours in a chain
const NilHandle int64 = -1

// InvalidHandle - Custom error to inform that a page handle does not refer to a live page
type InvalidHandle struct {
	msg string
}

// Error - Used to notify that a page handle is invalid
func (E InvalidHandle) Error() string {
	if E.msg == "" {
		return "invalid page handle"
	}
	return E.msg
}

// Arena - Owns every page of a table. Pages are addressed by integer handles and freed handles
// are recycled before the arena grows.
type Arena struct {
	pages        []*model.Page
	free         []int64
	pageCapacity int
	live         int64
}

// NewArena - Returns a pointer to a new, empty Arena producing pages with pageCapacity slots
func NewArena(pageCapacity int) *Arena {
	return &Arena{pageCapacity: pageCapacity}
}

// Alloc - Returns the handle of a new page with all slots empty and no neighbours
func (A *Arena) Alloc() (handle int64) {
	page := &model.Page{
		Slots:    make([]model.Slot, A.pageCapacity),
		Next:     NilHandle,
		Previous: NilHandle,
	}

	if n := len(A.free); n > 0 {
		handle = A.free[n-1]
		A.free = A.free[:n-1]
		A.pages[handle] = page
	} else {
		handle = int64(len(A.pages))
		A.pages = append(A.pages, page)
	}
	A.live++

	return
}

// Free - Releases the page behind handle, the handle may be handed out again by a later Alloc
func (A *Arena) Free(handle int64) (err error) {
	if _, err = A.Page(handle); err != nil {
		return errors.Wrap(err, "free")
	}

	A.pages[handle] = nil
	A.free = append(A.free, handle)
	A.live--

	return
}

// Page - Returns the live page behind handle
func (A *Arena) Page(handle int64) (page *model.Page, err error) {
	if handle < 0 || handle >= int64(len(A.pages)) {
		err = errors.WithStack(InvalidHandle{msg: "page handle out of range"})
		return
	}
	page = A.pages[handle]
	if page == nil {
		err = errors.WithStack(InvalidHandle{msg: "page handle refers to a freed page"})
	}

	return
}

// Live - Returns the number of pages currently allocated
func (A *Arena) Live() int64 {
	return A.live
}

// Reset - Drops every page, the arena can be reused afterwards
func (A *Arena) Reset() {
	A.pages = nil
	A.free = nil
	A.live = 0
}
