package ida

import (
	"runtime"
	"sync/atomic"
)

// spinLock is a busy-wait mutual exclusion flag with the sync.Locker
// contract. The allocator's critical sections are bounded by tree height,
// a few word operations per level, so contended callers spin-and-yield
// instead of parking.
type spinLock struct {
	state atomic.Uint32
}

func (l *spinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (l *spinLock) Unlock() {
	l.state.Store(0)
}
