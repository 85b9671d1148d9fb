package guard

import (
	"sync/atomic"

	"github.com/NetPo4ki/go-guard/sched"
)

// Kind discriminates the two lock modes.
type Kind int

const (
	Shared Kind = iota
	Unique
)

func (k Kind) String() string {
	if k == Unique {
		return "unique"
	}
	return "shared"
}

// Observer receives lock lifecycle hooks. Implementations must be safe
// for concurrent use.
type Observer interface {
	LockAcquired(kind Kind, attempts int)
	LockReleased(kind Kind)
}

type Option func(*Options)

type Options struct {
	Observer Observer
}

// WithObserver attaches an observer to the guard. A nil observer costs
// nothing on the lock path.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// Guarded bundles a payload with an asynchronous readers-writer lock.
// The lock state is a single atomic integer: 0 free, -1 one unique
// holder, n>0 n shared holders. Proxies and pending acquisitions hold
// the *Guarded, so the guard outlives both.
type Guarded[T any] struct {
	state atomic.Int32
	value T
	s     sched.Scheduler
	obs   Observer
}

// New creates a guard around value, served by s.
func New[T any](s sched.Scheduler, value T, optFns ...Option) *Guarded[T] {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Guarded[T]{value: value, s: s, obs: opts.Observer}
}

// LockShared suspends t until a shared (reader) lock is held and returns
// the proxy granting read access. Acquisition has no failure mode; it
// completes once the lock becomes available. Re-locking a guard the task
// already holds uniquely spins forever; use IsHolding to branch around
// that.
func (g *Guarded[T]) LockShared(t *sched.Task) *SharedProxy[T] {
	attempts := g.acquire(t, g.tryShared)
	if g.obs != nil {
		g.obs.LockAcquired(Shared, attempts)
	}
	return &SharedProxy[T]{g: g}
}

// LockUnique suspends t until the exclusive (writer) lock is held and
// returns the proxy granting mutable access.
func (g *Guarded[T]) LockUnique(t *sched.Task) *UniqueProxy[T] {
	attempts := g.acquire(t, g.tryUnique)
	if g.obs != nil {
		g.obs.LockAcquired(Unique, attempts)
	}
	return &UniqueProxy[T]{g: g}
}

// IsHolding reports whether ref points at this guard's payload storage.
// A caller that already holds a proxy can use it to detect that a
// reference it was handed is the guarded object and skip re-locking;
// the guard itself performs no reentrancy detection.
func (g *Guarded[T]) IsHolding(ref *T) bool {
	return ref == &g.value
}

func (g *Guarded[T]) tryShared() bool {
	s := g.state.Load()
	return s >= 0 && g.state.CompareAndSwap(s, s+1)
}

func (g *Guarded[T]) tryUnique() bool {
	return g.state.CompareAndSwap(0, -1)
}

// acquire runs the cooperative spin-retry loop. The first attempt is a
// single compare-and-swap made inline; on success the task never
// suspends. On failure the task suspends and every later attempt runs
// as its own work item on the task's worker, so a contended acquisition
// yields the worker between attempts instead of stalling it. A
// successful retry resumes the task through a fresh work item, never
// inline, which bounds stack depth. Retry cadence is one scheduler turn
// with no backoff; there is no waiter queue and no fairness among
// competing acquisitions.
func (g *Guarded[T]) acquire(t *sched.Task, try func() bool) int {
	if try() {
		return 1
	}
	attempts := 1
	w := t.Worker()
	var attempt func()
	attempt = func() {
		attempts++
		if try() {
			t.Resume(w)
			return
		}
		g.s.ScheduleOn(w, attempt)
	}
	// The retry item cannot run before Suspend yields the worker: the
	// worker is held by this task's current turn.
	g.s.ScheduleOn(w, attempt)
	t.Suspend()
	return attempts
}
