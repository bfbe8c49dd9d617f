package linearhashing

import (
	"bufio"
	"fmt"
	"github.com/gostonefire/linearhashing/internal/model"
	"github.com/gostonefire/linearhashing/internal/storage"
	"io"
)

// Display - Writes the contents of every bucket to w, one line per bucket. Keys of a page are separated by a
// space and each page is terminated by "-> ", e.g. "3 13 23 33 -> 43 -> ". A blank line ends the output.
func (T *Table) Display(w io.Writer) (err error) {
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	bw := bufio.NewWriter(w)
	for _, bucket := range T.buckets {
		iter := storage.NewPages(T.arena, bucket.Head)
		for iter.HasNext() {
			var page *model.Page
			_, page, err = iter.Next()
			if err != nil {
				return
			}
			for _, slot := range page.Slots {
				if slot.State == model.SlotOccupied {
					_, _ = fmt.Fprintf(bw, "%d ", slot.Key)
				}
			}
			_, _ = bw.WriteString("-> ")
		}
		_ = bw.WriteByte('\n')
	}
	_ = bw.WriteByte('\n')

	return bw.Flush()
}

// MaxChainLength - Returns the number of pages in the longest bucket chain
func (T *Table) MaxChainLength() (maxLength int, err error) {
	if T.destroyed {
		err = TableDestroyed{}
		return
	}

	var length int
	for _, bucket := range T.buckets {
		length, err = T.arena.ChainLength(bucket.Head)
		if err != nil {
			return
		}
		if length > maxLength {
			maxLength = length
		}
	}

	return
}
