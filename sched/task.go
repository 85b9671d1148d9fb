package sched

// Task is a cooperative task pinned to a worker. The task function runs
// on its own goroutine but only while it holds its worker's turn: the
// worker blocks for the duration of the turn, and Suspend hands the
// worker back to its run queue until a matching Resume schedules the
// next turn. Tasks never migrate workers except through Resume.
type Task struct {
	s      Scheduler
	worker int
	resume chan struct{}
	yield  chan struct{}
	done   chan struct{}
}

// Spawn schedules fn to run as a cooperative task on the given worker.
// It is safe to call from any goroutine, including from inside another
// task's turn.
func Spawn(s Scheduler, worker int, fn func(t *Task)) *Task {
	t := &Task{
		s:      s,
		worker: worker,
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		<-t.resume
		fn(t)
		close(t.done)
		t.yield <- struct{}{}
	}()
	s.ScheduleOn(worker, t.turn)
	return t
}

// turn runs on a worker: it hands control to the task goroutine and
// holds the worker until the task suspends or ends.
func (t *Task) turn() {
	t.resume <- struct{}{}
	<-t.yield
}

// Scheduler returns the scheduler the task runs on.
func (t *Task) Scheduler() Scheduler { return t.s }

// Worker returns the index of the worker the task currently runs on.
// It is the worker-identity source for task code: the task function
// runs on its own goroutine, where a pool's goroutine-local
// CurrentWorker identity is not visible. Call it only from the task's
// own function.
func (t *Task) Worker() int { return t.worker }

// Suspend yields the worker to other queued work. Call it only from the
// task's own function; it returns once a matching Resume has scheduled a
// fresh turn and that turn runs.
func (t *Task) Suspend() {
	t.yield <- struct{}{}
	<-t.resume
}

// Resume schedules a fresh turn for a suspended task on the given
// worker. The task is never resumed inline in the caller. Exactly one
// Resume must follow each Suspend; that is the integration contract for
// anything implementing a suspension point on top of Task.
func (t *Task) Resume(worker int) {
	t.worker = worker
	t.s.ScheduleOn(worker, t.turn)
}

// Yield gives other work queued on the task's worker a turn and then
// continues. Call it only from the task's own function.
func (t *Task) Yield() {
	t.s.ScheduleOn(t.worker, t.turn)
	t.Suspend()
}

// Done is closed once the task function has returned.
func (t *Task) Done() <-chan struct{} { return t.done }
