// Package ida implements a thread-safe ID allocator for sparse ID spaces.
//
// The allocator hands out the smallest currently-unused uint64 on request
// and accepts issued IDs back for reuse. It is backed by a radix tree of
// 64-bit bitmaps, which keeps memory proportional to the number of allocated
// IDs rather than to their numeric span, so ID 5 and ID 5,000,000 can coexist
// without materializing anything in between.
//
// Tree shape:
// ----------
//
//   - every level has a fan-out of 64 (one radix digit = 6 bits);
//   - a leaf is a single uint64 bitmap, one bit per ID;
//   - an internal node keeps a 64-bit fullness summary (bit i set means
//     child subtree i has no free IDs) plus a rank-compressed slice of the
//     children that actually exist. An absent child slot reads as "entirely
//     free" and costs no memory;
//   - the tree starts as a single leaf (64 IDs) and grows one level whenever
//     the current range fills up: a new root adopts the old one as child 0,
//     multiplying capacity by 64. Height never shrinks, so issued IDs stay
//     addressable; emptied nodes below the root are reclaimed eagerly.
//
// Example tree after allocating IDs 0..70 and freeing most of them:
//
//	              [root: height 2]
//	               /           \
//	    [leaf: 0..63]       [leaf: 64..127]
//	     bits 0,5 set        bit 70-64 set
//
// All public methods are safe for concurrent use. Each call runs as a single
// short critical section under a busy-wait lock; no call blocks on anything
// but a concurrent call's bounded traversal.
//
// Example:
// -------
//
//	alloc := ida.New()
//
//	id1, _ := alloc.Alloc() // 0
//	id2, _ := alloc.Alloc() // 1
//
//	alloc.Free(id1)
//
//	id3, _ := alloc.Alloc() // 0 again: the freed ID is reused first
package ida
