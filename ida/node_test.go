package ida

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_InsertRemove(t *testing.T) {
	t.Parallel()

	n := &node{}

	// materialize slots out of order: 5, 1, 63
	k5 := n.insert(5, &node{})
	k1 := n.insert(1, &node{})
	k63 := n.insert(63, &node{})

	require.Len(t, n.kids, 3)

	// rank compression keeps kids sorted by slot
	assert.Same(t, k1, n.kid(1))
	assert.Same(t, k5, n.kid(5))
	assert.Same(t, k63, n.kid(63))
	assert.Nil(t, n.kid(0))
	assert.Nil(t, n.kid(6))

	n.remove(5)

	require.Len(t, n.kids, 2)
	assert.Nil(t, n.kid(5))
	assert.Same(t, k1, n.kid(1))
	assert.Same(t, k63, n.kid(63))

	n.remove(1)
	n.remove(63)

	assert.Empty(t, n.kids)
	assert.True(t, n.present.isEmpty())
}

func TestNode_LeafAlloc(t *testing.T) {
	t.Parallel()

	n := &node{}

	for i := uint64(0); i < idaBits; i++ {
		id, ok := n.alloc(0)

		require.True(t, ok)
		assert.Equal(t, i, id)
	}

	_, ok := n.alloc(0)
	assert.False(t, ok, "leaf handed out a 65th ID")
	assert.True(t, n.full.isFull())
}

func TestNode_AllocCrossesLeafBoundary(t *testing.T) {
	t.Parallel()

	n := &node{} // internal node one level above leaves

	for i := uint64(0); i < idaBits+2; i++ {
		id, ok := n.alloc(1)

		require.True(t, ok)
		require.Equal(t, i, id)
	}

	// 66 IDs span exactly two leaves
	assert.Len(t, n.kids, 2)
	assert.True(t, n.full.test(0), "summary bit for the filled leaf is clear")
	assert.False(t, n.full.test(1))
}

func TestNode_AllocRepairsStaleSummary(t *testing.T) {
	t.Parallel()

	// ad-hoc subtree: child 0 is full but the summary bit still claims
	// free capacity
	var (
		n   = &node{}
		kid = n.insert(0, &node{full: fullBitmap})
	)

	require.False(t, n.full.test(0))

	id, ok := n.alloc(1)

	require.True(t, ok)
	assert.Equal(t, uint64(idaBits), id, "allocation did not skip the full child")
	assert.True(t, n.full.test(0), "stale summary bit was not repaired")
	assert.Same(t, kid, n.kid(0))
}

func TestNode_FreeReclaimsEmptyChild(t *testing.T) {
	t.Parallel()

	n := &node{}

	id0, _ := n.alloc(1)
	id1, _ := n.alloc(1)
	require.Equal(t, uint64(0), id0)
	require.Equal(t, uint64(1), id1)
	require.Len(t, n.kids, 1)

	freed, emptied := n.free(id0, 1)
	assert.True(t, freed)
	assert.False(t, emptied)
	assert.Len(t, n.kids, 1, "leaf reclaimed while it still holds an ID")

	freed, emptied = n.free(id1, 1)
	assert.True(t, freed)
	assert.True(t, emptied)
	assert.Empty(t, n.kids, "empty leaf was not reclaimed")
	assert.True(t, n.present.isEmpty())
}

func TestNode_FreeUnallocated(t *testing.T) {
	t.Parallel()

	n := &node{}

	id, _ := n.alloc(1)
	require.Equal(t, uint64(0), id)

	// unallocated bit in a materialized leaf
	freed, _ := n.free(7, 1)
	assert.False(t, freed)

	// never-materialized subtree
	freed, _ = n.free(idaBits*3+1, 1)
	assert.False(t, freed)

	assert.True(t, n.has(0, 1), "no-op frees disturbed an allocated ID")
	assert.Equal(t, uint64(1), n.count(1))
}

func TestNode_Count(t *testing.T) {
	t.Parallel()

	n := &node{}

	const total = idaBits*2 + 10
	for i := 0; i < total; i++ {
		_, ok := n.alloc(1)
		require.True(t, ok)
	}

	assert.Equal(t, uint64(total), n.count(1))
	assert.Equal(t, 4, n.nodes()) // the node itself plus three leaves
}
