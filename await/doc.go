// Package await re-homes the continuation of an arbitrary suspendable
// operation to the worker that initiated the suspension. An operation
// whose underlying machinery completes on goroutines unrelated to the
// calling task would otherwise hand its result back in the wrong
// execution context; wrapping it with Value or Do buys context
// preservation for the cost of one extra suspend/resume hop.
package await
