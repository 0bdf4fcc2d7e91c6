package pool

import "sync/atomic"

// Func is the function a worker executes on behalf of a submitter.
// Its return value is delivered verbatim through the completion state and is
// never interpreted by the pool.
type Func func(arg any) int64

// Service is a unit of work handed to a worker: a function plus an opaque
// argument. A worker treats the record as consumed after execution and resets
// its slot to the zero value.
type Service struct {
	Fn  Func
	Arg any
}

// State is a caller-owned completion block. The worker that executes the
// service writes the return value and then publishes completion; it is the
// only writer. Callers must observe Complete() == true before reading Ret().
//
// A State must not be reused for a second submission without calling Reset.
type State struct {
	ret  int64
	done atomic.Bool
}

// Complete reports whether the service has finished executing.
func (s *State) Complete() bool {
	return s.done.Load()
}

// Ret returns the service's return value. Valid only after Complete
// has returned true.
func (s *State) Ret() int64 {
	return s.ret
}

// Reset prepares the state for another submission.
func (s *State) Reset() {
	s.ret = 0
	s.done.Store(false)
}

// finish publishes the return value. The atomic store of done orders the
// plain write of ret before it, so a poller that sees done == true also
// sees ret.
func (s *State) finish(ret int64) {
	s.ret = ret
	s.done.Store(true)
}
