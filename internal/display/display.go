// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package display implements the loading/error/ready life cycle of the dashboard panels.
//
// A Display holds the key it currently shows (a region name, a region id) and the outcome of
// the last fetch for that key. Changing the key starts a new fetch and supersedes the previous
// one: every fetch carries the generation it was started for and only results of the current
// generation are applied.
package display

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wneessen/weatherdash/internal/logger"
)

const tracerName = "github.com/wneessen/weatherdash/internal/display"

type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Display.
type State[K comparable, T any] struct {
	Key        K
	Status     Status
	Data       T
	Err        error
	Generation uint64
	UpdatedAt  time.Time
}

// FetchFunc loads the data shown for key.
type FetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

type Display[K comparable, T any] struct {
	name   string
	fetch  FetchFunc[K, T]
	log    *logger.Logger
	tracer trace.Tracer
	wg     sync.WaitGroup

	mu          sync.RWMutex
	state       State[K, T]
	hasKey      bool
	closed      bool
	cancel      context.CancelFunc
	subscribers map[chan State[K, T]]struct{}
}

// New returns a Display in the loading state. Nothing is fetched before the first call to Set.
func New[K comparable, T any](name string, fetch FetchFunc[K, T], log *logger.Logger) *Display[K, T] {
	return &Display[K, T]{
		name:        name,
		fetch:       fetch,
		log:         log,
		tracer:      otel.Tracer(tracerName),
		state:       State[K, T]{Status: StatusLoading, UpdatedAt: time.Now()},
		subscribers: make(map[chan State[K, T]]struct{}),
	}
}

func (d *Display[K, T]) Name() string {
	return d.name
}

// Set switches the display to key. If key differs from the current key (or no key was set yet),
// the running fetch is cancelled, the display goes back to loading and a new fetch is started.
// Set reports whether a fetch was started.
func (d *Display[K, T]) Set(key K) bool {
	return d.start(key, false)
}

// Refresh is like Set but always starts a new fetch, even if key is the current key.
func (d *Display[K, T]) Refresh(key K) bool {
	return d.start(key, true)
}

func (d *Display[K, T]) start(key K, force bool) bool {
	d.mu.Lock()
	if d.closed || (!force && d.hasKey && d.state.Key == key) {
		d.mu.Unlock()
		return false
	}
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.hasKey = true
	d.state = State[K, T]{
		Key:        key,
		Status:     StatusLoading,
		Generation: d.state.Generation + 1,
		UpdatedAt:  time.Now(),
	}
	generation := d.state.Generation
	d.broadcast(d.state)
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(ctx, key, generation)
	return true
}

// Key returns the current key and whether one has been set.
func (d *Display[K, T]) Key() (K, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Key, d.hasKey
}

// State returns the latest state.
func (d *Display[K, T]) State() State[K, T] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Subscribe returns a channel that receives the current state followed by every state change,
// and a function to end the subscription. If the subscriber falls behind, the oldest pending
// update is dropped so that the latest state is always delivered.
func (d *Display[K, T]) Subscribe(size int) (<-chan State[K, T], func()) {
	if size < 1 {
		size = 1
	}
	ch := make(chan State[K, T], size)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	d.subscribers[ch] = struct{}{}
	ch <- d.state
	d.mu.Unlock()

	unsub := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.subscribers[ch]; ok {
			delete(d.subscribers, ch)
			close(ch)
		}
	}
	return ch, unsub
}

// Close cancels the running fetch, ends all subscriptions and waits for the fetch goroutine
// to return. A closed display ignores Set.
func (d *Display[K, T]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	if d.cancel != nil {
		d.cancel()
	}
	for ch := range d.subscribers {
		delete(d.subscribers, ch)
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Display[K, T]) run(ctx context.Context, key K, generation uint64) {
	defer d.wg.Done()

	ctx, span := d.tracer.Start(ctx, d.name+".fetch", trace.WithAttributes(
		attribute.String("display.key", fmt.Sprint(key)),
		attribute.Int64("display.generation", int64(generation)), //nolint:gosec
	))
	defer span.End()

	start := time.Now()
	data, err := d.fetch(ctx, key)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || generation != d.state.Generation {
		span.AddEvent("stale result discarded")
		d.log.Debug("discarding stale fetch result", slog.String("display", d.name),
			slog.Any("key", key), slog.Uint64("generation", generation))
		return
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		d.log.Error("failed to fetch display data", logger.Err(err), slog.String("display", d.name),
			slog.Any("key", key))
		d.state.Status = StatusError
		d.state.Err = err
	} else {
		d.log.Debug("display data fetched", slog.String("display", d.name), slog.Any("key", key),
			slog.Duration("took", time.Since(start)))
		d.state.Status = StatusReady
		d.state.Data = data
	}
	d.state.UpdatedAt = time.Now()
	d.broadcast(d.state)
}

// broadcast must be called with d.mu held.
func (d *Display[K, T]) broadcast(state State[K, T]) {
	for ch := range d.subscribers {
		select {
		case ch <- state:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}
