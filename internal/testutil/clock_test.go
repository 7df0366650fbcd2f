package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_StaysStopped(t *testing.T) {
	clock := NewFixedClock(GoldenTime())

	assert.Equal(t, GoldenTime(), clock.Now())
	assert.Equal(t, GoldenTime(), clock.Now())
}

func TestGoldenTime(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC), GoldenTime())
}

func TestFixedClock_ThreadSafe(t *testing.T) {
	clock := NewFixedClock(GoldenTime())
	const numGoroutines = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, GoldenTime(), clock.Now())
		}()
	}
	wg.Wait()
}
