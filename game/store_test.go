package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("Create and get", func(t *testing.T) {
		store := NewStore()

		session := store.CreateSession()
		require.NotNil(t, session)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, NewGameState(), session.State)

		assert.Same(t, session, store.GetSession(session.ID))
		assert.Nil(t, store.GetSession("unknown"))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Sessions are independent", func(t *testing.T) {
		store := NewStore()
		a := store.CreateSession()
		b := store.CreateSession()
		require.NotEqual(t, a.ID, b.ID)

		require.True(t, Play(a.State, 4))

		assert.Len(t, a.State.History, 2)
		assert.Len(t, b.State.History, 1)
	})

	t.Run("Evict idle sessions", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		store := NewStore()
		store.now = func() time.Time { return now }

		stale := store.CreateSession()
		fresh := store.CreateSession()

		now = now.Add(2 * time.Hour)
		store.Touch(fresh)

		assert.Equal(t, []string{stale.ID}, store.EvictIdle(time.Hour))
		assert.Nil(t, store.GetSession(stale.ID))
		assert.Same(t, fresh, store.GetSession(fresh.ID))
	})

	t.Run("Concurrent creates", func(t *testing.T) {
		store := NewStore()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				session := store.CreateSession()
				session.Lock()
				Play(session.State, 0)
				session.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, store.Len())
	})
}
