// Package result provides a single-assignment cell for handing one
// outcome across an asynchronous boundary.
package result

import "sync/atomic"

const (
	empty int32 = iota
	hasValue
	hasError
)

// Cell is a one-shot slot holding exactly one of nothing, a value, or
// an error. It is written at most once by exactly one producer and read
// by one consumer after the write has been made visible through an
// external happens-before edge (for the primitives in this module, the
// scheduler's enqueue). The tag is atomic only so that a second write
// fails loudly instead of corrupting the slot. The zero value is an
// empty cell.
type Cell[T any] struct {
	tag   atomic.Int32
	value T
	err   error
}

// Resolve stores a value. It panics if the cell was already written.
func (c *Cell[T]) Resolve(v T) {
	c.value = v
	if !c.tag.CompareAndSwap(empty, hasValue) {
		panic("result: cell written twice")
	}
}

// Reject stores an error. It panics if the cell was already written.
func (c *Cell[T]) Reject(err error) {
	c.err = err
	if !c.tag.CompareAndSwap(empty, hasError) {
		panic("result: cell written twice")
	}
}

// Take reads the outcome. ok is false when the cell is still empty.
func (c *Cell[T]) Take() (v T, err error, ok bool) {
	switch c.tag.Load() {
	case hasValue:
		return c.value, nil, true
	case hasError:
		return v, c.err, true
	default:
		return v, nil, false
	}
}
