package model

// SlotEmpty - State indicating a slot that holds no key
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a key
const SlotOccupied uint8 = 1

// Slot - Represents one key position in a page
type Slot struct {
	State uint8
	Key   int64
}

// Page - Represents a fixed capacity array of key slots, the storage unit of a bucket chain.
// Next and Previous are arena handles to neighbouring pages in the same chain.
type Page struct {
	Slots    []Slot
	NKeys    int
	Next     int64
	Previous int64
}

// IsFull - Returns true if every slot in the page is occupied
func (P *Page) IsFull() bool {
	return P.NKeys >= len(P.Slots)
}

// IsEmpty - Returns true if no slot in the page is occupied
func (P *Page) IsEmpty() bool {
	return P.NKeys == 0
}

// Bucket - Represents one addressable bucket, the head page is permanent for the lifetime of the table
type Bucket struct {
	Head  int64
	NKeys int64
}
