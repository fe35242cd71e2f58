package shutdown

import (
	"testing"
	"time"

	"github.com/sadeepdeshal/CALCULATOR/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	var order []string
	m.Register("bus", Func(func() { order = append(order, "bus") }))
	m.Register("controller", Func(func() { order = append(order, "controller") }))
	m.Register("window", Func(func() { order = append(order, "window") }))

	m.Shutdown()

	assert.Equal(t, []string{"window", "controller", "bus"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownSkipsSlowComponent(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetStepTimeout(10 * time.Millisecond)
	block := make(chan struct{})
	defer close(block)
	reached := false
	m.Register("fast", Func(func() { reached = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, reached)
	assert.Less(t, time.Since(start), time.Second)
}
