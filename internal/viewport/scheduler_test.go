package viewport

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler_FlushRunsInOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.Schedule(func() { got = append(got, 1) })
	cancel := s.Schedule(func() { got = append(got, 2) })
	s.Schedule(func() { got = append(got, 3) })

	cancel()
	cancel()

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 2, s.Flush())
	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestManualScheduler_ScheduleDuringFlushWaits(t *testing.T) {
	s := NewManualScheduler()
	ran := 0
	s.Schedule(func() {
		ran++
		s.Schedule(func() { ran++ })
	})

	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 2, ran)
}

func TestFrameScheduler_DefaultFPS(t *testing.T) {
	s := NewFrameScheduler(0)
	assert.Equal(t, time.Second/DefaultFPS, s.Interval())
}

func TestFrameScheduler_RunsWithinOneFrame(t *testing.T) {
	s := NewFrameScheduler(50)
	var ran atomic.Bool
	s.Schedule(func() { ran.Store(true) })

	assert.Eventually(t, ran.Load, 10*s.Interval(), time.Millisecond)
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := NewFrameScheduler(50)
	var ran atomic.Bool
	cancel := s.Schedule(func() { ran.Store(true) })
	cancel()

	time.Sleep(3 * s.Interval())
	assert.False(t, ran.Load())
}
