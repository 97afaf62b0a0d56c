package syncutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtomic(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var s Atomic[string]
		assert.Equal(t, "", s.Load())

		var tm Atomic[time.Time]
		assert.True(t, tm.Load().IsZero())
	})

	t.Run("StoreAndLoad", func(t *testing.T) {
		a := NewAtomic("foo")
		assert.Equal(t, "foo", a.Load())

		a.Store("bar")
		assert.Equal(t, "bar", a.Load())
	})

	t.Run("Time", func(t *testing.T) {
		now := time.Now()
		a := NewAtomic(now)
		assert.Equal(t, now, a.Load())

		tomorrow := now.AddDate(0, 0, 1)
		a.Store(tomorrow)
		assert.Equal(t, tomorrow, a.Load())
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		a := NewAtomic("initial")

		const goroutines = 100
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := range goroutines {
			go func() {
				defer wg.Done()
				a.Store(fmt.Sprintf("value %d", i))
				_ = a.Load()
			}()
		}
		wg.Wait()

		assert.Contains(t, a.Load(), "value ")
	})
}
