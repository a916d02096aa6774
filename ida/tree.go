package ida

import (
	"errors"
	"math"
)

// ErrExhausted is returned by Alloc when every addressable ID is taken and
// the tree is not allowed to grow any further.
var ErrExhausted = errors.New("ida: ID space exhausted")

// tree is the radix tree behind an Allocator: a lazily materialized node
// graph plus the current height. Capacity is 64^height. Growth is the only
// way height changes and it only goes up: freeing every ID prunes nodes but
// keeps the addressable range, so previously issued IDs never fall out of
// reach.
type tree struct {
	root      *node
	height    uint // radix digits from root to leaf level; 0 until first use
	maxHeight uint
}

func (t *tree) alloc() (uint64, bool) {
	if t.root == nil {
		t.root = &node{}
		if t.height == 0 {
			t.height = 1
		}
	}

	for {
		if id, ok := t.root.alloc(t.height - 1); ok {
			return id, true
		}
		if t.height >= t.maxHeight {
			return 0, false
		}
		t.grow()
	}
}

// grow adds one level on top: a fresh root adopts the old one as child 0,
// so every issued ID keeps its value and slots 1..63 open a range 64 times
// larger. The new root is fully built before it is linked in.
func (t *tree) grow() {
	old := t.root
	root := &node{}
	root.insert(0, old)
	if old.full.isFull() {
		root.full.set(0)
	}
	t.root = root
	t.height++
}

// free releases id and reports whether it was actually allocated. IDs beyond
// the current capacity, or inside a subtree that was never materialized, are
// silently ignored.
func (t *tree) free(id uint64) bool {
	if t.root == nil || id >= t.capacity() {
		return false
	}
	freed, _ := t.root.free(id, t.height-1)
	return freed
}

func (t *tree) has(id uint64) bool {
	if t.root == nil || id >= t.capacity() {
		return false
	}
	return t.root.has(id, t.height-1)
}

// capacity is the number of IDs addressable at the current height.
func (t *tree) capacity() uint64 {
	h := t.height
	if h == 0 {
		h = 1 // a fresh tree starts life as a single leaf
	}
	if h*idaShift >= 64 {
		return math.MaxUint64
	}
	return 1 << (h * idaShift)
}
