// Package observable holds UI-facing state that several goroutines read and
// one or more subscribers watch for changes.
package observable

import "sync"

// subscriberBuffer is the per-subscriber channel capacity. Once full, the
// oldest pending value is discarded so the publisher never blocks.
const subscriberBuffer = 1

// Value is a mutex-guarded value with change subscriptions
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]chan T
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value: initial,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies subscribers
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = value
	for _, ch := range v.subs {
		publish(ch, value)
	}
}

// Update applies fn to the current value under the lock and publishes the result
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = fn(v.value)
	for _, ch := range v.subs {
		publish(ch, v.value)
	}
	return v.value
}

// Subscribe returns a channel that receives the current value immediately and
// every later change, plus a cancel func that closes the channel.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++

	ch := make(chan T, subscriberBuffer)
	ch <- v.value
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish must be called with v.mu held
func publish[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
		}

		// Drop the stale value the subscriber has not consumed yet
		select {
		case <-ch:
		default:
		}
	}
}
