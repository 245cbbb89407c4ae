package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsDueCallbacksInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(0, 500, func() { order = append(order, "sparkle") })
	s.After(0, 100, func() { order = append(order, "first") })
	s.After(0, 100, func() { order = append(order, "second") })

	assert.Equal(t, 0, s.Run(99))
	assert.Equal(t, 2, s.Run(100))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.Run(1000))
	assert.Equal(t, []string{"first", "second", "sparkle"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerDefersCallbacksQueuedWhileRunning(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.After(0, 0, func() {
		ran++
		s.After(0, 0, func() { ran++ })
	})

	s.Run(0)
	assert.Equal(t, 1, ran)
	s.Run(0)
	assert.Equal(t, 2, ran)
}

func TestClock(t *testing.T) {
	c := NewClock()
	for i := 0; i < 60; i++ {
		c.Advance(1000.0 / 60.0)
	}
	assert.Equal(t, int64(1000), c.Now())

	c.Set(500)
	assert.Equal(t, int64(1000), c.Now(), "clock never goes backwards")
	c.Set(1500)
	assert.Equal(t, int64(1500), c.Now())
}
