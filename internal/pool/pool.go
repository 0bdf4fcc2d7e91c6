// Package pool implements a dynamically-sized worker pool. Submissions are
// dispatched to pre-allocated workers without per-request goroutine creation
// on the hot path: a submit either pops a parked worker off the free-list or
// lazily creates one, writes its service slot, and wakes it. Workers re-park
// after each service and self-retire under shrink pressure.
//
// The pool never queues: a submit that can neither obtain nor create a
// worker fails with ErrRetry and the caller decides whether to loop.
package pool

import (
	"fmt"
	"sync"

	"github.com/moharaka/thdpool/internal/events"
)

const (
	// DefaultMin and DefaultMax are used when Config leaves Min or Max
	// at the -1 sentinel.
	DefaultMin = 3
	DefaultMax = 9

	// NameMax bounds the stored pool name; longer names are silently
	// truncated.
	NameMax = 256
)

// Config configures a Pool. Min, Max and Node accept -1 as "use default":
// DefaultMin, DefaultMax, and no placement preference respectively.
type Config struct {
	// Min is the number of workers created at init and the floor the pool
	// never shrinks below.
	Min int

	// Max is the initial ceiling on pool size. The balancer raises and
	// lowers it at runtime, but never below Min.
	Max int

	// Node is a preferred placement hint recorded at init. The pool does
	// no pinning itself; the hint is surfaced through stats and events.
	Node int

	// Name is the display prefix for the pool and its workers, truncated
	// to NameMax.
	Name string

	// Events receives pool lifecycle events when non-nil.
	Events *events.Bus
}

// Stats is a point-in-time snapshot of the pool's counters.
type Stats struct {
	Name    string
	Node    int
	Number  int // non-retired workers
	InList  int // workers currently parked on the free-list
	Min     int
	Max     int
	Balance int

	Submits int64 // successful and rejected submissions
	Retries int64 // submissions rejected with ErrRetry
	Created int64 // workers created over the pool's lifetime
	Retired int64 // workers retired over the pool's lifetime
}

// Pool owns a set of worker goroutines and the free-list of the parked ones.
// All counters and free-list membership are guarded by mu; the service slot
// handoff to a woken worker is lock-free (see worker.wake).
type Pool struct {
	name string
	node int

	mu       sync.Mutex
	free     []*worker // parked workers, used as a stack
	number   int
	inList   int
	min, max int
	balance  int
	nextID   int64
	stopping bool

	submits int64
	retries int64
	created int64
	retired int64

	stopc chan struct{}
	wg    sync.WaitGroup

	// spawn creates a worker and starts its goroutine. Overridable so
	// tests can induce creation failure.
	spawn func(id int64) (*worker, error)

	bus *events.Bus
}

// New creates a pool and starts cfg.Min workers, all parked. On worker
// creation failure the already-created workers are torn down and the error
// is surfaced.
func New(cfg Config) (*Pool, error) {
	min, max := cfg.Min, cfg.Max
	if min < 0 {
		min = DefaultMin
	}
	if max < 0 {
		max = DefaultMax
	}
	if min > max {
		return nil, fmt.Errorf("pool min %d exceeds max %d", min, max)
	}

	name := cfg.Name
	if len(name) > NameMax {
		name = name[:NameMax]
	}

	p := &Pool{
		name:  name,
		node:  cfg.Node,
		min:   min,
		max:   max,
		stopc: make(chan struct{}),
		bus:   cfg.Events,
	}
	p.spawn = p.startWorker

	for i := 0; i < p.min; i++ {
		w, err := p.createParked()
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("pool %s: %w", p.name, err)
		}
		p.emit(events.NewEvent(events.WorkerCreated, p.name).WithWorker(w.name))
	}

	p.emit(events.NewEvent(events.PoolStarted, p.name).WithPayload(Stats{
		Name: p.name, Node: p.node, Number: p.min, InList: p.min,
		Min: p.min, Max: p.max,
	}))
	return p, nil
}

// NewDefault creates a pool with default sizing and no placement preference.
// The name is built printf-style from namefmt and args.
func NewDefault(namefmt string, args ...any) (*Pool, error) {
	return New(Config{Min: -1, Max: -1, Node: -1, Name: fmt.Sprintf(namefmt, args...)})
}

// Submit hands fn(arg) to a worker, discarding the return value.
func (p *Pool) Submit(fn Func, arg any) error {
	return p.SubmitService(Service{Fn: fn, Arg: arg}, nil)
}

// SubmitService hands a service to a parked worker, creating one if the
// free-list is empty. state may be nil; when supplied it receives the
// service's return value and a completion flag.
//
// Returns ErrRetry when no worker could be obtained; the condition is
// transient. Submitting concurrently with Destroy is a caller error and is
// not detected.
func (p *Pool) SubmitService(srv Service, state *State) error {
	p.mu.Lock()
	p.submits++

	w := p.takeLocked()
	if w == nil {
		// Free-list empty: grow. The counter increments are a
		// reservation for the worker about to be created; every
		// failure path below releases it.
		p.balanceUp()
		p.inList++
		p.number++
		id := p.nextID
		p.nextID++
		p.mu.Unlock()

		// Creation happens outside the lock.
		nw, err := p.spawn(id)

		p.mu.Lock()
		if err != nil {
			p.inList--
			p.number--
			// A concurrent park may have refilled the free-list.
			w = p.takeLocked()
			if w == nil {
				p.retries++
				p.mu.Unlock()
				p.emit(events.NewEvent(events.SubmitRejected, p.name).WithError(err))
				return ErrRetry
			}
			p.mu.Unlock()
		} else {
			// The new worker is handed straight to the submitter,
			// never parked: consume the free-list half of the
			// reservation.
			p.inList--
			p.created++
			p.mu.Unlock()
			w = nw
			p.emit(events.NewEvent(events.WorkerCreated, p.name).WithWorker(w.name))
		}
	} else {
		p.mu.Unlock()
	}

	// The worker reads its slot only after receiving the wake token, so
	// these writes are published by the channel send.
	w.srv = srv
	w.state = state
	w.wake <- struct{}{}
	return nil
}

// Destroy tears the pool down: every worker is signalled and retires at its
// next park check. Destroy blocks until all workers have exited. The caller
// must quiesce submitters first; no internal synchronisation is provided
// for that.
func (p *Pool) Destroy() {
	p.mu.Lock()
	if p.stopping {
		p.mu.Unlock()
		p.wg.Wait()
		return
	}
	p.stopping = true
	close(p.stopc)
	p.mu.Unlock()

	p.wg.Wait()
	p.emit(events.NewEvent(events.PoolDestroyed, p.name))
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Name:    p.name,
		Node:    p.node,
		Number:  p.number,
		InList:  p.inList,
		Min:     p.min,
		Max:     p.max,
		Balance: p.balance,
		Submits: p.submits,
		Retries: p.retries,
		Created: p.created,
		Retired: p.retired,
	}
}

// Name returns the pool's display name.
func (p *Pool) Name() string { return p.name }

// takeLocked pops a parked worker, applying shrink bias for the surplus
// observation. Returns nil when the free-list is empty. Lock held.
func (p *Pool) takeLocked() *worker {
	if len(p.free) == 0 {
		return nil
	}
	p.balanceDown()
	n := len(p.free) - 1
	w := p.free[n]
	p.free[n] = nil
	p.free = p.free[:n]
	p.inList--
	return w
}

// detachLocked removes a worker from the free-list if it is there. Only the
// retire path needs this: a stop broadcast wakes parked workers without
// popping them. Lock held.
func (p *Pool) detachLocked(w *worker) {
	for i, x := range p.free {
		if x == w {
			last := len(p.free) - 1
			p.free[i] = p.free[last]
			p.free[last] = nil
			p.free = p.free[:last]
			p.inList--
			return
		}
	}
}

// createParked creates a worker and registers it on the free-list. Used by
// the init path only; on-demand workers are handed to the submitter instead.
func (p *Pool) createParked() (*worker, error) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.mu.Unlock()

	w, err := p.spawn(id)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.free = append(p.free, w)
	p.inList++
	p.number++
	p.created++
	p.mu.Unlock()
	return w, nil
}

// startWorker allocates a worker record and starts its goroutine. The
// goroutine parks immediately; it runs nothing until the first wake.
func (p *Pool) startWorker(id int64) (*worker, error) {
	w := &worker{
		id:   id,
		name: fmt.Sprintf("%s_%d", p.name, id),
		pool: p,
		wake: make(chan struct{}, 1),
	}
	p.wg.Add(1)
	go w.run()
	return w, nil
}

func (p *Pool) emit(e events.Event) {
	if p.bus != nil {
		p.bus.Emit(e)
	}
}
