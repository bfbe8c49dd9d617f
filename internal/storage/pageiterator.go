package storage

import (
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/pkg/errors"
)

// Pages - Is used to iterate over the pages of a bucket chain one by one.
// The handle of the following page is captured when a page is returned, so the returned page may be
// unlinked before the next call to Next.
type Pages struct {
	arena  *Arena
	handle int64
}

// NewPages - Returns a pointer to a new Pages iterator starting at head
func NewPages(arena *Arena, head int64) *Pages {
	return &Pages{
		arena:  arena,
		handle: head,
	}
}

// HasNext - Returns true if there are more pages to be fetched from a call to Next.
func (P *Pages) HasNext() bool {
	return P.handle != NilHandle
}

// Next - Returns the next page in the chain.
// It returns:
//   - handle is the arena handle of the page.
//   - page is the page itself.
//   - err is an error of type InvalidHandle (wrapped) if the chain is broken or already exhausted.
func (P *Pages) Next() (handle int64, page *model.Page, err error) {
	if P.handle == NilHandle {
		err = errors.WithStack(InvalidHandle{msg: "no more pages in chain"})
		return
	}

	page, err = P.arena.Page(P.handle)
	if err != nil {
		err = errors.Wrap(err, "error while walking page chain")
		return
	}

	handle = P.handle
	P.handle = page.Next

	return
}
