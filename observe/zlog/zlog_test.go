package zlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NetPo4ki/go-guard/guard"
)

func TestObserverLogsLockEvents(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	o := New(zerolog.New(&buf))
	o.LockAcquired(guard.Unique, 2)
	o.LockReleased(guard.Unique)
	out := buf.String()
	if !strings.Contains(out, "lock acquired") || !strings.Contains(out, `"kind":"unique"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, "lock released") {
		t.Fatalf("release was not logged: %s", out)
	}
}

func TestFailureHookLogs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	hook := FailureHook(zerolog.New(&buf))
	hook("went sideways")
	out := buf.String()
	if !strings.Contains(out, "detached unit failed") || !strings.Contains(out, "went sideways") {
		t.Fatalf("unexpected log output: %s", out)
	}
}
