package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryManagerUserState(t *testing.T) {
	m := NewMemoryManager()

	assert.Equal(t, None, m.GetUserState(1), "unknown user defaults to None")

	m.SetUserState(1, WaitingForPhoto)
	assert.Equal(t, WaitingForPhoto, m.GetUserState(1))
	assert.Equal(t, None, m.GetUserState(2), "states are per user")

	m.ClearUserState(1)
	assert.Equal(t, None, m.GetUserState(1))
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	_, ok := m.GetTempData(1, KeyDate)
	assert.False(t, ok)

	m.SetTempData(1, KeyDate, "2025-03-09")
	m.SetTempData(1, KeyFoodID, "f42")

	v, ok := m.GetTempData(1, KeyDate)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-09", v)

	m.ClearTempData(1)
	_, ok = m.GetTempData(1, KeyDate)
	assert.False(t, ok)
	_, ok = m.GetTempData(1, KeyFoodID)
	assert.False(t, ok)
}

func TestMemoryManagerConcurrentAccess(t *testing.T) {
	m := NewMemoryManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetUserState(id, ReviewingPhoto)
			m.SetTempData(id, KeyReview, "{}")
			_ = m.GetUserState(id)
			_, _ = m.GetTempData(id, KeyReview)
			m.ClearTempData(id)
		}(int64(i))
	}
	wg.Wait()
}
