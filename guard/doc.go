// Package guard provides an asynchronous readers-writer guard for
// cooperative tasks. The payload is reachable only through scoped proxy
// handles obtained by suspending the task until the lock is available;
// releasing the proxy is the only release path.
package guard
