package pool

import "github.com/moharaka/thdpool/internal/events"

// worker is a long-lived goroutine owned by the pool. It alternates between
// executing the service in its slot and parking on the free-list until the
// pool hands it out again or tells it to retire.
type worker struct {
	id   int64
	name string
	pool *Pool

	// service slot, written by a submitter while the worker is parked.
	// The handoff is lock-free: the submitter's writes happen-before the
	// wake send, and the worker reads the slot only after receiving it.
	srv   Service
	state *State

	// wake carries exactly one token per handout. The one-slot buffer is
	// what makes the park protocol safe: a wake sent between free-list
	// registration and the worker blocking in sleep is retained, never lost.
	wake chan struct{}
}

func (w *worker) run() {
	p := w.pool
	defer p.wg.Done()
	for {
		w.sleep()
		w.exec()
		if w.parkOrRetire() {
			return
		}
	}
}

// sleep blocks until the worker is handed a service or the pool is stopping.
func (w *worker) sleep() {
	select {
	case <-w.wake:
	case <-w.pool.stopc:
	}
}

// exec runs the service in the slot, publishes the completion state, and
// resets the slot. A wake with an empty slot (stop broadcast, spurious)
// executes nothing.
func (w *worker) exec() {
	if w.srv.Fn != nil {
		ret := w.srv.Fn(w.srv.Arg)
		if w.state != nil {
			w.state.finish(ret)
		}
	}
	w.srv = Service{}
	w.state = nil
}

// parkOrRetire registers the worker back on the free-list, or retires it when
// the pool is shutting down or shrink pressure left number above max.
// Returns true if the worker retired.
func (w *worker) parkOrRetire() bool {
	p := w.pool

	p.mu.Lock()
	if p.number > p.max || p.stopping {
		// A stop-woken worker is still on the free-list; drop it there
		// before it goes away.
		p.detachLocked(w)
		p.number--
		p.retired++
		p.mu.Unlock()
		p.emit(events.NewEvent(events.WorkerRetired, p.name).WithWorker(w.name))
		return true
	}
	p.free = append(p.free, w)
	p.inList++
	p.mu.Unlock()
	return false
}
