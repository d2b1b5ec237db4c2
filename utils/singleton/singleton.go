// Package singleton holds a single process-wide value behind an explicit initialization contract.
//
// A Holder starts empty. The first successful Init stores the value and every later Init is a no-op.
// Get reports whether a value is present; MustGet panics if Init has not completed. A Holder must not
// be copied after first use.
package singleton

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrNotInitialized is returned when a Holder is read before Init.
var ErrNotInitialized = errors.New("singleton not initialized")

// Holder stores one value of type T for the lifetime of the process.
type Holder[T any] struct {
	mu          sync.Mutex
	initialized atomic.Bool
	value       T
}

// Init stores the result of build if the Holder is empty and reports whether this call did so.
// If build returns an error the Holder stays empty and a later Init may try again.
func (h *Holder[T]) Init(build func() (T, error)) (bool, error) {
	if h.initialized.Load() {
		return false, nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized.Load() {
		return false, nil
	}
	v, err := build()
	if err != nil {
		return false, errors.Wrap(err, "singleton init failed")
	}
	h.value = v
	h.initialized.Store(true)
	return true, nil
}

// Get returns the value and whether it has been initialized.
func (h *Holder[T]) Get() (T, bool) {
	if !h.initialized.Load() {
		var zero T
		return zero, false
	}
	return h.value, true
}

// GetOrInit returns the value, initializing it with build first if needed.
func (h *Holder[T]) GetOrInit(build func() (T, error)) (T, error) {
	if _, err := h.Init(build); err != nil {
		var zero T
		return zero, err
	}
	v, _ := h.Get()
	return v, nil
}

// MustGet returns the value and panics if Init has not completed.
func (h *Holder[T]) MustGet() T {
	v, ok := h.Get()
	if !ok {
		panic(ErrNotInitialized)
	}
	return v
}

// IsInitialized reports whether Init has completed.
func (h *Holder[T]) IsInitialized() bool {
	return h.initialized.Load()
}
