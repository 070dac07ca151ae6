// Package locks provides a keyed mutex used to serialize the check-then-act
// sequence of vehicle scheduling. The conflict check reads every booking before
// writing a new one, so two requests racing on the same driver or mixer could
// both pass the check and double-book the resource. Locking the resource keys
// for the duration of the read-check-write sequence closes that race while
// leaving unrelated resources free to schedule concurrently.
package locks

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/pkg/errs"
)

// DefaultAcquireTimeout bounds how long a caller waits for a contended key
// before the operation fails with a retryable error.
const DefaultAcquireTimeout = 3 * time.Second

// KeyedMutex is a set of independent mutexes addressed by string key.
// Keys are created on first use and never discarded; the expected key space
// (driver names and mixer numbers) is small and long-lived.
type KeyedMutex struct {
	acquire chan struct{} // guards the slots map
	slots   map[string]chan struct{}
	timeout time.Duration
}

// NewKeyedMutex creates a KeyedMutex with the given acquisition timeout.
// A non-positive timeout falls back to DefaultAcquireTimeout.
func NewKeyedMutex(timeout time.Duration) *KeyedMutex {
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}
	km := &KeyedMutex{
		acquire: make(chan struct{}, 1),
		slots:   make(map[string]chan struct{}),
		timeout: timeout,
	}
	km.acquire <- struct{}{}
	return km
}

// slot returns the single-slot channel for key, creating it when absent.
func (km *KeyedMutex) slot(key string) chan struct{} {
	<-km.acquire
	defer func() { km.acquire <- struct{}{} }()

	s, ok := km.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		s <- struct{}{}
		km.slots[key] = s
	}
	return s
}

// Lock acquires the mutex for key, waiting at most the configured timeout.
// It returns a release function on success. On timeout or context
// cancellation it returns a ResourceLockBusyError, which callers may retry.
func (km *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	s := km.slot(key)

	timer := time.NewTimer(km.timeout)
	defer timer.Stop()

	select {
	case <-s:
		return func() { s <- struct{}{} }, nil
	case <-timer.C:
		return nil, errs.NewResourceLockBusyError(key)
	case <-ctx.Done():
		return nil, errs.NewResourceLockBusyErrorWithCause(key, ctx.Err())
	}
}

// LockAll acquires the mutexes for all keys, deduplicated and in sorted order
// so that concurrent callers locking overlapping key sets cannot deadlock.
// On success it returns a single release function for the whole set; on
// failure every lock taken so far is released before the error is returned.
func (km *KeyedMutex) LockAll(ctx context.Context, keys []string) (func(), error) {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)

	releases := make([]func(), 0, len(unique))
	for _, k := range unique {
		release, err := km.Lock(ctx, k)
		if err != nil {
			for i := len(releases) - 1; i >= 0; i-- {
				releases[i]()
			}
			return nil, err
		}
		releases = append(releases, release)
	}

	return func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}, nil
}
