package rwmutex

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/NetPo4ki/go-guard/guard"
	"github.com/NetPo4ki/go-guard/sched"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBlockingRoundTrip(t *testing.T) {
	t.Parallel()
	p := sched.NewPool(2)
	defer p.Close()
	g := guard.New(p, 1)
	l := Wrap(p, g, 0)

	up := l.Lock()
	*up.Get() = 2
	up.Release()

	sp := l.RLock()
	if got := *sp.Get(); got != 2 {
		t.Fatalf("payload = %d, want 2", got)
	}
	sp.Release()
}

func TestLockWaitsForReader(t *testing.T) {
	t.Parallel()
	p := sched.NewPool(2)
	defer p.Close()
	g := guard.New(p, 0)
	l := Wrap(p, g, 1)

	rp := l.RLock()
	done := make(chan struct{})
	go func() {
		wp := l.Lock()
		wp.Release()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("exclusive lock acquired while a reader holds the guard")
	case <-time.After(50 * time.Millisecond):
	}
	rp.Release()
	<-done
}
