// Package rwmutex adapts a guard.Guarded to a blocking API usable from
// plain goroutines outside the worker pool. It enables incremental
// migration of code that cannot yet run as a cooperative task.
package rwmutex

import (
	"github.com/NetPo4ki/go-guard/guard"
	"github.com/NetPo4ki/go-guard/sched"
)

// Locker wraps a Guarded. Each lock call spawns a short-lived task on
// the configured worker to perform the cooperative acquisition and
// hands the proxy back to the blocked caller. Releases go through the
// proxy as usual and are safe from the calling goroutine.
type Locker[T any] struct {
	s      sched.Scheduler
	g      *guard.Guarded[T]
	worker int
}

// Wrap builds a Locker performing acquisitions on the given worker.
func Wrap[T any](s sched.Scheduler, g *guard.Guarded[T], worker int) *Locker[T] {
	return &Locker[T]{s: s, g: g, worker: worker}
}

// RLock blocks the calling goroutine until a shared lock is held.
func (l *Locker[T]) RLock() *guard.SharedProxy[T] {
	ch := make(chan *guard.SharedProxy[T], 1)
	sched.Spawn(l.s, l.worker, func(t *sched.Task) {
		ch <- l.g.LockShared(t)
	})
	return <-ch
}

// Lock blocks the calling goroutine until the exclusive lock is held.
func (l *Locker[T]) Lock() *guard.UniqueProxy[T] {
	ch := make(chan *guard.UniqueProxy[T], 1)
	sched.Spawn(l.s, l.worker, func(t *sched.Task) {
		ch <- l.g.LockUnique(t)
	})
	return <-ch
}
