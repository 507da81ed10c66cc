package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoller_FiresImmediatelyAndStops(t *testing.T) {
	var runs int32
	p := NewPoller(10*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}

	got := atomic.LoadInt32(&runs)
	if got < 2 {
		t.Errorf("expected the immediate run plus at least one tick, got %d", got)
	}

	after := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&runs) != after {
		t.Error("poller kept running after cancellation")
	}
}

func TestPoller_SingleFlight(t *testing.T) {
	var active, maxActive int32
	p := NewPoller(time.Hour, func(ctx context.Context) {
		n := atomic.AddInt32(&active, 1)
		for {
			cur := atomic.LoadInt32(&maxActive)
			if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&active, -1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.tick(context.Background())
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&maxActive) != 1 {
		t.Errorf("overlapping runs observed: max %d in flight", maxActive)
	}
	if p.Skipped() == 0 {
		t.Error("concurrent ticks should have been skipped")
	}
	if p.Skipped() > 4 {
		t.Errorf("too many skips recorded: %d", p.Skipped())
	}
}

func TestPoller_RecoversAfterRun(t *testing.T) {
	var runs int32
	p := NewPoller(time.Hour, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	p.tick(context.Background())
	p.tick(context.Background())

	if atomic.LoadInt32(&runs) != 2 {
		t.Errorf("sequential ticks must all run, got %d", runs)
	}
	if p.Skipped() != 0 {
		t.Errorf("nothing should be skipped when runs do not overlap, got %d", p.Skipped())
	}
}
