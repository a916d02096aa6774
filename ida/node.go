package ida

// node is one level of the radix tree. Leaf vs internal is decided by the
// level number carried through the traversal, not by a per-node tag:
//
//   - at level 0 (a leaf) only the full bitmap is used and its bits track
//     individual IDs;
//   - at internal levels a set bit in full means the corresponding child
//     subtree has no free IDs left, and present/kids hold the children that
//     have been materialized. An absent slot reads as entirely free.
//
// kids is rank-compressed: the child for slot i lives at index
// popcount(present below i), the same scheme veb-style trees use, so a node
// with two sparse children pays for two pointers, not 64.
type node struct {
	full    bitmap  // leaf: occupancy; internal: child-is-full summary
	present bitmap  // internal: which child slots are materialized
	kids    []*node // internal: materialized children, rank-indexed
}

// rank is the index into kids for slot i.
func (n *node) rank(i uint) uint64 {
	return (n.present & (1<<i - 1)).count()
}

// kid returns the materialized child at slot i, or nil.
func (n *node) kid(i uint) *node {
	if !n.present.test(i) {
		return nil
	}
	return n.kids[n.rank(i)]
}

// insert materializes kid at the absent slot i.
func (n *node) insert(i uint, kid *node) *node {
	r := n.rank(i)
	n.kids = append(n.kids, nil)
	copy(n.kids[r+1:], n.kids[r:])
	n.kids[r] = kid
	n.present.set(i)
	return kid
}

// remove reclaims the child at slot i, reverting the slot to absent.
func (n *node) remove(i uint) {
	r := n.rank(i)
	n.kids = append(n.kids[:r], n.kids[r+1:]...)
	n.present.clear(i)
}

// alloc claims the lowest free ID in this subtree. level counts the radix
// digits below this node; 0 means a leaf.
func (n *node) alloc(level uint) (uint64, bool) {
	if level == 0 {
		i, ok := n.full.lowestFree()
		if !ok {
			return 0, false
		}
		n.full.set(i)
		return uint64(i), true
	}

	for {
		// The lowest clear summary bit is the lowest child with free
		// capacity; absent slots count as free, so the numerically
		// lowest ID always wins even when it needs a new child.
		i, ok := n.full.lowestFree()
		if !ok {
			return 0, false
		}

		kid := n.kid(i)
		if kid == nil {
			kid = n.insert(i, &node{})
		}

		if sub, ok := kid.alloc(level - 1); ok {
			if kid.full.isFull() {
				n.full.set(i)
			}
			return uint64(i)<<(level*idaShift) | sub, true
		}

		// Stale summary: the bit claimed free capacity but the child
		// is full. Repair it and rescan.
		n.full.set(i)
	}
}

// free releases id within this subtree. freed reports whether the occupancy
// bit was actually set, emptied whether the subtree holds no IDs afterwards.
func (n *node) free(id uint64, level uint) (freed, emptied bool) {
	i := uint(id>>(level*idaShift)) & idaMask

	if level == 0 {
		if n.full.test(i) {
			n.full.clear(i)
			freed = true
		}
		return freed, n.full.isEmpty()
	}

	kid := n.kid(i)
	if kid == nil {
		return false, n.present.isEmpty()
	}

	freed, kidEmpty := kid.free(id, level-1)
	if freed {
		n.full.clear(i) // the child cannot be full anymore
	}
	if kidEmpty {
		n.remove(i)
	}
	return freed, n.present.isEmpty()
}

// has reports whether id is allocated in this subtree.
func (n *node) has(id uint64, level uint) bool {
	i := uint(id>>(level*idaShift)) & idaMask

	if level == 0 {
		return n.full.test(i)
	}

	kid := n.kid(i)
	return kid != nil && kid.has(id, level-1)
}

// count returns the number of allocated IDs in this subtree.
func (n *node) count(level uint) uint64 {
	if level == 0 {
		return n.full.count()
	}

	var total uint64
	for _, kid := range n.kids {
		total += kid.count(level - 1)
	}
	return total
}

// nodes returns the number of materialized nodes in this subtree,
// this one included.
func (n *node) nodes() int {
	total := 1
	for _, kid := range n.kids {
		total += kid.nodes()
	}
	return total
}
