package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"warung-pos/internal/domain"
)

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before a snapshot arrived")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	panic("unreachable")
}

func TestWatcherDeliversInitialAndChangedSnapshots(t *testing.T) {
	var version atomic.Int64
	load := func(ctx context.Context) (int64, error) {
		return version.Load(), nil
	}
	w := New(load, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := w.Subscribe(ctx)
	if got := waitFor(t, sub); got != 0 {
		t.Fatalf("initial snapshot: want 0, got %d", got)
	}

	version.Store(1)
	if got := waitFor(t, sub); got != 1 {
		t.Fatalf("changed snapshot: want 1, got %d", got)
	}
}

func TestWatcherSkipsUnchangedSnapshots(t *testing.T) {
	var loads atomic.Int64
	load := func(ctx context.Context) (string, error) {
		loads.Add(1)
		return "same", nil
	}
	w := New(load, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := w.Subscribe(ctx)
	waitFor(t, sub)

	// Let several polls happen; none should push again.
	for loads.Load() < 5 {
		time.Sleep(5 * time.Millisecond)
	}
	select {
	case v := <-sub:
		t.Fatalf("unchanged snapshot was pushed: %q", v)
	default:
	}
}

func TestWatcherLatestWins(t *testing.T) {
	var version atomic.Int64
	load := func(ctx context.Context) (int64, error) {
		return version.Load(), nil
	}
	w := New(load, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.poll(ctx)
	sub := w.Subscribe(ctx)

	// Subscriber never reads while two more versions land; only the last
	// one should remain in the buffer.
	version.Store(1)
	w.poll(ctx)
	version.Store(2)
	w.poll(ctx)

	if got := waitFor(t, sub); got != 2 {
		t.Fatalf("want latest snapshot 2, got %d", got)
	}
}

func TestWatcherClosesSubscribersOnStop(t *testing.T) {
	load := func(ctx context.Context) (int, error) { return 1, nil }
	w := New(load, 5*time.Millisecond, nil)

	runCtx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(runCtx)
		close(done)
	}()

	sub := w.Subscribe(context.Background())
	waitFor(t, sub)

	stop()
	<-done

	select {
	case _, ok := <-sub:
		if ok {
			t.Fatal("expected channel to be closed without a value")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel not closed after stop")
	}

	// A late subscriber on a stopped watcher gets a closed channel.
	if _, ok := <-w.Subscribe(context.Background()); ok {
		t.Fatal("subscribe after stop must return a closed channel")
	}
}

func TestWatcherSubscriberContextCancel(t *testing.T) {
	load := func(ctx context.Context) (int, error) { return 1, nil }
	w := New(load, 5*time.Millisecond, nil)

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()
	go w.Run(runCtx)

	subCtx, unsubscribe := context.WithCancel(context.Background())
	sub := w.Subscribe(subCtx)
	waitFor(t, sub)

	unsubscribe()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after subscriber context cancel")
		}
	}
}

type staticCatalog struct {
	products []domain.Product
}

func (s staticCatalog) ListProducts(context.Context) ([]domain.Product, error) {
	return s.products, nil
}
func (s staticCatalog) ListToppings(context.Context) ([]domain.Topping, error)    { return nil, nil }
func (s staticCatalog) ListCategories(context.Context) ([]domain.Category, error) { return nil, nil }

func TestCatalogWatcherSnapshot(t *testing.T) {
	source := staticCatalog{products: []domain.Product{{ID: "p-1", Name: "Kopi Susu"}}}
	w := NewCatalogWatcher(source, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.poll(ctx)

	snap := waitFor(t, w.Subscribe(ctx))
	if len(snap.Products) != 1 || snap.Products[0].ID != "p-1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
