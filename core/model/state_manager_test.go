package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateManagerLifecycle(t *testing.T) {
	sm := NewStateManager()
	assert.False(t, sm.IsFitted())

	sm.SetDimensions(100, 8, 3)
	sm.SetFitted()
	assert.True(t, sm.IsFitted())

	n, m, k := sm.Dimensions()
	assert.Equal(t, 100, n)
	assert.Equal(t, 8, m)
	assert.Equal(t, 3, k)

	sm.Reset()
	assert.False(t, sm.IsFitted())
	n, m, k = sm.Dimensions()
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, m)
	assert.Equal(t, 0, k)
}

func TestStateManagerConcurrentAccess(t *testing.T) {
	sm := NewStateManager()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sm.SetFitted()
		}()
		go func() {
			defer wg.Done()
			_ = sm.IsFitted()
		}()
	}
	wg.Wait()
	assert.True(t, sm.IsFitted())
}

func TestStateManagerString(t *testing.T) {
	sm := NewStateManager()
	sm.SetDimensions(5, 2, 1)
	assert.Contains(t, sm.String(), "fitted: false")
	assert.Contains(t, sm.String(), "samples: 5")
}
