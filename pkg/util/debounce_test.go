package util

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerLastWriteWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var got atomic.Value

	d.Trigger(func() { got.Store("first") })
	d.Trigger(func() { got.Store("second") })

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "second", got.Load())
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Stop with nothing pending is a no-op.
	d.Stop()
}

func TestDebouncerReusableAfterStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
