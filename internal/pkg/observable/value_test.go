package observable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestValue_GetSet(t *testing.T) {
	v := NewValue(3)
	assert.Equal(t, 3, v.Get())

	v.Set(5)
	assert.Equal(t, 5, v.Get())

	got := v.Update(func(n int) int { return n - 1 })
	assert.Equal(t, 4, got)
	assert.Equal(t, 4, v.Get())
}

func TestValue_SubscribeReceivesCurrentAndChanges(t *testing.T) {
	v := NewValue("login")

	ch, cancel := v.Subscribe()
	defer cancel()

	assert.Equal(t, "login", receive(t, ch))

	v.Set("tabs")
	assert.Equal(t, "tabs", receive(t, ch))
}

func TestValue_SlowSubscriberSeesLatest(t *testing.T) {
	v := NewValue(0)

	ch, cancel := v.Subscribe()
	defer cancel()

	for i := 1; i <= 10; i++ {
		v.Set(i)
	}

	assert.Equal(t, 10, receive(t, ch))
	select {
	case extra := <-ch:
		t.Fatalf("unexpected pending value %d", extra)
	default:
	}
}

func TestValue_CancelClosesChannel(t *testing.T) {
	v := NewValue(1)

	ch, cancel := v.Subscribe()
	receive(t, ch)

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic
	v.Set(2)
}

func TestValue_ConcurrentSet(t *testing.T) {
	v := NewValue(0)
	ch, cancel := v.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, v.Get())
	assert.Equal(t, 50, receive(t, ch))
}
