// Package otel provides an OpenTelemetry observer plugin for the guard
// library. It emits span events for lock activity with low overhead.
package otel
