package sched

// Scheduler is the capability contract a host runtime provides to the
// primitives in this module. Pool implements it; hosts with their own
// event loop supply an adapter, and tests may substitute a double.
type Scheduler interface {
	// CurrentWorker returns the index of the worker executing the
	// caller, or -1 when the caller does not run on a worker.
	CurrentWorker() int

	// WorkerCount returns the number of workers.
	WorkerCount() int

	// ScheduleOn enqueues fn for later execution on the given worker.
	// It must be callable from any goroutine and must preserve
	// per-caller submission order.
	ScheduleOn(worker int, fn func())
}
