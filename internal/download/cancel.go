package download

import "sync/atomic"

// CancelFlag is the batch-scoped stop signal shared by reference with every
// active and newly dequeued task. It is set once per stop request, cleared at
// the start of each new batch, and read at the task checkpoints.
type CancelFlag struct {
	set atomic.Bool
}

// Set raises the flag.
func (f *CancelFlag) Set() { f.set.Store(true) }

// Clear re-arms the flag for a new batch.
func (f *CancelFlag) Clear() { f.set.Store(false) }

// IsSet reports whether a stop has been requested.
func (f *CancelFlag) IsSet() bool { return f.set.Load() }
