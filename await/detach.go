package await

import "sync/atomic"

// FailureHook observes a panic escaping a detached background unit.
type FailureHook func(recovered any)

var failureHook atomic.Value // FailureHook

func init() { SetFailureHook(nil) }

// SetFailureHook installs h as the handler for panics escaping detached
// units, so hosts can log or count them. The default discards them.
// Pass nil to restore the default.
func SetFailureHook(h FailureHook) {
	if h == nil {
		h = func(any) {}
	}
	failureHook.Store(h)
}

// Detach runs fn on its own goroutine, independent of the lifetime of
// whatever spawned it. A panic escaping fn goes to the failure hook
// instead of taking the process down.
func Detach(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				failureHook.Load().(FailureHook)(r)
			}
		}()
		fn()
	}()
}
