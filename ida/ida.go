package ida

import "fmt"

// Allocator hands out the smallest currently-unused uint64 ID and accepts
// issued IDs back for reuse. All methods are safe for concurrent use: each
// call runs as a single short critical section under a spinlock, and calls
// are totally ordered by lock acquisition.
type Allocator struct {
	lock spinLock
	tree tree
	size uint64
}

// New returns an empty allocator covering the whole uint64 ID space.
func New() *Allocator {
	return NewBounded(idaMaxLevels)
}

// NewBounded returns an empty allocator whose tree may grow to at most
// maxHeight levels, capping capacity at 64^maxHeight IDs. maxHeight is
// clamped to [1, 11].
func NewBounded(maxHeight uint) *Allocator {
	if maxHeight == 0 {
		maxHeight = 1
	}
	if maxHeight > idaMaxLevels {
		maxHeight = idaMaxLevels
	}
	return &Allocator{
		tree: tree{maxHeight: maxHeight},
	}
}

// Alloc claims and returns the smallest free ID. It fails with ErrExhausted
// only when every addressable ID is taken and the tree cannot grow further;
// a later Free makes Alloc succeed again.
func (a *Allocator) Alloc() (uint64, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	id, ok := a.tree.alloc()
	if !ok {
		return 0, ErrExhausted
	}
	a.size++
	return id, nil
}

// Free returns id to the pool. Freeing an ID that is not currently
// allocated, or one beyond the current capacity, is a no-op.
func (a *Allocator) Free(id uint64) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.tree.free(id) {
		a.size--
	}
}

// Has reports whether id is currently allocated.
func (a *Allocator) Has(id uint64) bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.tree.has(id)
}

// Len returns the number of currently allocated IDs.
func (a *Allocator) Len() uint64 {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.size
}

// Cap returns the number of IDs addressable without growing the tree.
func (a *Allocator) Cap() uint64 {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.tree.capacity()
}

// String returns a one-line debug summary.
func (a *Allocator) String() string {
	a.lock.Lock()
	defer a.lock.Unlock()

	var nodes int
	if a.tree.root != nil {
		nodes = a.tree.root.nodes()
	}

	return fmt.Sprintf(
		"ida.Allocator{len:%d cap:%d height:%d nodes:%d}",
		a.size, a.tree.capacity(), a.tree.height, nodes,
	)
}
