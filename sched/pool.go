package sched

import (
	"fmt"
	"sync"

	"github.com/jtolds/gls"
)

type workerKey struct{}

// Pool is an in-process Scheduler: n workers, each a goroutine draining
// its own FIFO run queue. Worker identity is carried in goroutine-local
// storage, so CurrentWorker works from any closure a worker runs
// directly. Task functions execute on their own goroutines and do not
// see that identity; task code asks Task.Worker instead.
type Pool struct {
	mgr     *gls.ContextManager
	workers []*runQueue
	wg      sync.WaitGroup
}

// NewPool starts a pool with n workers. n must be at least 1.
func NewPool(n int) *Pool {
	if n < 1 {
		panic("sched: pool needs at least one worker")
	}
	p := &Pool{
		mgr:     gls.NewContextManager(),
		workers: make([]*runQueue, n),
	}
	for i := range p.workers {
		p.workers[i] = newRunQueue()
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	return p
}

func (p *Pool) run(worker int) {
	defer p.wg.Done()
	p.mgr.SetValues(gls.Values{workerKey{}: worker}, func() {
		q := p.workers[worker]
		for {
			fn, ok := q.pop()
			if !ok {
				return
			}
			fn()
		}
	})
}

// CurrentWorker returns the index of the worker executing the caller,
// or -1 when the caller does not run on this pool. The identity is
// goroutine-local: it is visible inside closures the worker executes
// directly, not inside task goroutines (use Task.Worker there).
func (p *Pool) CurrentWorker() int {
	v, ok := p.mgr.GetValue(workerKey{})
	if !ok {
		return -1
	}
	return v.(int)
}

// WorkerCount returns the number of workers in the pool.
func (p *Pool) WorkerCount() int { return len(p.workers) }

// ScheduleOn enqueues fn on the given worker. Safe to call from any
// goroutine; submissions from one goroutine run in submission order.
// After Close the callback is dropped. An out-of-range worker index is
// a caller bug and panics.
func (p *Pool) ScheduleOn(worker int, fn func()) {
	if worker < 0 || worker >= len(p.workers) {
		panic(fmt.Sprintf("sched: worker %d out of range [0,%d)", worker, len(p.workers)))
	}
	if fn == nil {
		return
	}
	p.workers[worker].push(fn)
}

// Close lets each worker drain the work already queued, then stops the
// workers and waits for them to exit.
func (p *Pool) Close() {
	for _, q := range p.workers {
		q.close()
	}
	p.wg.Wait()
}

type runQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []func()
	closed bool
}

func newRunQueue() *runQueue {
	q := &runQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *runQueue) push(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, fn)
	q.cond.Signal()
}

func (q *runQueue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}
	fn := q.items[0]
	q.items = q.items[1:]
	return fn, true
}

func (q *runQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}
