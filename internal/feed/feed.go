// Package feed implements a polling-with-diff change feed: it periodically
// reloads a snapshot and pushes it to subscribers whenever it differs from
// the previous one. Views use it to reflect concurrent edits from other
// sessions without holding open database state per client.
package feed

import (
	"context"
	"io"
	"log"
	"reflect"
	"sync"
	"time"
)

// Watcher polls a snapshot loader and broadcasts changed snapshots in order.
// Each subscriber holds a buffer of one; a slow subscriber observes the
// latest snapshot rather than an unbounded backlog.
type Watcher[T any] struct {
	load     func(ctx context.Context) (T, error)
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	subs    map[int]chan T
	nextID  int
	last    T
	hasLast bool
	closed  bool
}

func New[T any](load func(ctx context.Context) (T, error), interval time.Duration, logger *log.Logger) *Watcher[T] {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Watcher[T]{
		load:     load,
		interval: interval,
		logger:   logger,
		subs:     make(map[int]chan T),
	}
}

// Run polls until ctx is cancelled, then closes all subscriber channels.
func (w *Watcher[T]) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			w.close()
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher[T]) poll(ctx context.Context) {
	snapshot, err := w.load(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Printf("feed: load snapshot: %v", err)
		}
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.hasLast && reflect.DeepEqual(w.last, snapshot) {
		return
	}
	w.last = snapshot
	w.hasLast = true
	for _, ch := range w.subs {
		push(ch, snapshot)
	}
}

// push delivers latest-wins: an unread older snapshot is replaced.
func push[T any](ch chan T, snapshot T) {
	for {
		select {
		case ch <- snapshot:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// Subscribe registers a listener. The current snapshot, when one exists, is
// delivered immediately. The channel is closed when ctx is cancelled or the
// watcher stops.
func (w *Watcher[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		close(ch)
		return ch
	}
	id := w.nextID
	w.nextID++
	w.subs[id] = ch
	if w.hasLast {
		push(ch, w.last)
	}
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(ch)
		}
	}()
	return ch
}

func (w *Watcher[T]) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
}
