// Package sched provides the scheduler capability consumed by the guard
// and await primitives, an in-process worker-pool implementation of it,
// and cooperative tasks pinned to pool workers. A task runs only while it
// holds its worker's turn; suspending yields the worker to other queued
// work and resuming always goes through a freshly scheduled work item.
package sched
