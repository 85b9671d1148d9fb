// Package zlog adapts guard observability to zerolog for hosts that log
// lock activity instead of scraping it.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/NetPo4ki/go-guard/guard"
)

// Observer logs lock lifecycle events at debug level.
type Observer struct {
	log zerolog.Logger
}

// New returns an Observer writing through log.
func New(log zerolog.Logger) *Observer { return &Observer{log: log} }

func (o *Observer) LockAcquired(kind guard.Kind, attempts int) {
	o.log.Debug().Str("kind", kind.String()).Int("attempts", attempts).Msg("lock acquired")
}

func (o *Observer) LockReleased(kind guard.Kind) {
	o.log.Debug().Str("kind", kind.String()).Msg("lock released")
}

// FailureHook returns an await failure hook that logs panics escaping
// detached background units at error level.
func FailureHook(log zerolog.Logger) func(recovered any) {
	return func(r any) {
		log.Error().Interface("recovered", r).Msg("detached unit failed")
	}
}
