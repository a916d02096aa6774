package ida

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	idaShift     = 6              // radix digit width in bits
	idaBits      = 1 << idaShift  // fan-out per level == bits per leaf
	idaMask      = idaBits - 1    // 0b111111
	idaMaxLevels = (64 + idaShift - 1) / idaShift // levels to cover the uint64 space
)

// bitmap is a fixed 64-slot occupancy map: bit i set means slot i is taken.
// A leaf uses it to track individual IDs; an internal node uses the same
// shape as its per-child fullness summary, so both levels share one
// lowest-clear-bit scan.
type bitmap uint64

const fullBitmap = ^bitmap(0)

// lowestFree returns the position of the lowest clear bit,
// or false when every slot is taken.
func (b bitmap) lowestFree() (uint, bool) {
	if b == fullBitmap {
		return 0, false
	}
	return uint(bits.TrailingZeros64(^uint64(b))), true
}

func (b *bitmap) set(i uint)   { *b |= 1 << i }
func (b *bitmap) clear(i uint) { *b &^= 1 << i }

func (b bitmap) test(i uint) bool { return b&(1<<i) != 0 }

func (b bitmap) isFull() bool  { return b == fullBitmap }
func (b bitmap) isEmpty() bool { return b == 0 }

// count returns the number of set bits.
func (b bitmap) count() uint64 { return popcount.Count(uint64(b)) }
