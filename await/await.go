package await

import (
	"errors"
	"fmt"

	"github.com/NetPo4ki/go-guard/result"
	"github.com/NetPo4ki/go-guard/sched"
)

// ErrNoResult is returned when a resumed await observes an empty result
// cell. It indicates a bug in the resumption machinery, not a condition
// callers are expected to handle.
var ErrNoResult = errors.New("await: resumed with no result")

// Value runs op on a detached background unit and suspends t until the
// outcome is ready. No matter which goroutine op completes on, the task
// resumes on the worker it was running on when Value was called (worker
// 0 when the captured index is out of range). Value always suspends,
// even when op could complete immediately.
//
// op's error is returned as-is; a panic inside op is converted to an
// error and returned the same way. The background unit is not tied to
// the task's lifetime and always runs op to completion; there is no way
// to cancel an in-flight wrapped operation.
func Value[T any](t *sched.Task, op func() (T, error)) (T, error) {
	w := t.Worker()
	if w < 0 || w >= t.Scheduler().WorkerCount() {
		w = 0
	}
	var cell result.Cell[T]
	Detach(func() {
		v, err := protect(op)
		if err != nil {
			cell.Reject(err)
		} else {
			cell.Resolve(v)
		}
		t.Resume(w)
	})
	t.Suspend()
	v, err, ok := cell.Take()
	if !ok {
		var zero T
		return zero, ErrNoResult
	}
	return v, err
}

// Do is the side-effect-only form of Value: it stores and hands back
// success or failure with no payload, through the same mechanism.
func Do(t *sched.Task, op func() error) error {
	_, err := Value(t, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}

func protect[T any](op func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("await: wrapped operation panicked: %v", r)
		}
	}()
	return op()
}
