package guard

// SharedProxy grants read access to the guarded payload for as long as
// it is held. Obtain one only through LockShared and release it with
// Release, typically deferred at the acquisition site. A proxy is owned
// by one goroutine at a time and is not safe for concurrent use.
type SharedProxy[T any] struct {
	g        *Guarded[T]
	released bool
}

// Get returns the payload. The view is read-only by contract; mutate
// only through a UniqueProxy.
func (p *SharedProxy[T]) Get() *T { return &p.g.value }

// Release drops this shared hold, decrementing the holder count by one.
// Idempotent.
func (p *SharedProxy[T]) Release() {
	if p.released {
		return
	}
	p.released = true
	p.g.state.Add(-1)
	if p.g.obs != nil {
		p.g.obs.LockReleased(Shared)
	}
}

// UniqueProxy grants exclusive mutable access to the guarded payload
// for as long as it is held. Obtain one only through LockUnique and
// release it with Release. A proxy is owned by one goroutine at a time
// and is not safe for concurrent use.
type UniqueProxy[T any] struct {
	g        *Guarded[T]
	released bool
}

// Get returns the payload for reading and writing.
func (p *UniqueProxy[T]) Get() *T { return &p.g.value }

// Release drops the exclusive hold, returning the lock to the free
// state. Idempotent.
func (p *UniqueProxy[T]) Release() {
	if p.released {
		return
	}
	p.released = true
	p.g.state.Store(0)
	if p.g.obs != nil {
		p.g.obs.LockReleased(Unique)
	}
}
