package gamestate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore() (*MemoryStore, *time.Time) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return current },
	}
	return store, &current
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store, _ := newClockedStore()

	state := &GameState{Token: NewToken(), Score: 2, Lives: 3, TimeLimit: 300}
	require.NoError(t, store.Save(state, time.Hour))

	loaded, err := store.Get(state.Token)
	require.NoError(t, err)
	assert.Equal(t, state.Score, loaded.Score)
	assert.Equal(t, state.Lives, loaded.Lives)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store, _ := newClockedStore()

	state := &GameState{Token: NewToken(), Score: 1}
	require.NoError(t, store.Save(state, time.Hour))

	loaded, err := store.Get(state.Token)
	require.NoError(t, err)
	loaded.Score = 99

	again, err := store.Get(state.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Score)
}

func TestMemoryStore_ExpiresAfterTTL(t *testing.T) {
	store, clock := newClockedStore()

	state := &GameState{Token: NewToken()}
	require.NoError(t, store.Save(state, time.Hour))

	*clock = clock.Add(time.Hour + time.Minute)

	_, err := store.Get(state.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveRefreshesTTL(t *testing.T) {
	store, clock := newClockedStore()

	state := &GameState{Token: NewToken()}
	require.NoError(t, store.Save(state, time.Hour))

	*clock = clock.Add(50 * time.Minute)
	require.NoError(t, store.Save(state, time.Hour))

	*clock = clock.Add(50 * time.Minute)
	_, err := store.Get(state.Token)
	assert.NoError(t, err)
}

func TestMemoryStore_Delete(t *testing.T) {
	store, _ := newClockedStore()

	state := &GameState{Token: NewToken()}
	require.NoError(t, store.Save(state, time.Hour))
	require.NoError(t, store.Delete(state.Token))

	_, err := store.Get(state.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_MissingToken(t *testing.T) {
	store, _ := newClockedStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameState_Answered(t *testing.T) {
	state := &GameState{AnsweredQuestions: []string{"a", "b"}}

	assert.True(t, state.Answered("a"))
	assert.False(t, state.Answered("c"))
}
