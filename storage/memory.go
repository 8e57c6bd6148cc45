package storage

import "github.com/they4kman/sweeper/scoreboard"

// MemoryStore keeps the state for the life of the process only
type MemoryStore struct {
	state scoreboard.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (store *MemoryStore) Load() (scoreboard.State, error) {
	return copyState(store.state), nil
}

func (store *MemoryStore) Save(state scoreboard.State) error {
	store.state = copyState(state)
	return nil
}

func copyState(state scoreboard.State) scoreboard.State {
	copied := scoreboard.State{
		Name:        state.Name,
		Leaderboard: make(map[string][]scoreboard.Entry, len(state.Leaderboard)),
	}
	for difficulty, entries := range state.Leaderboard {
		copied.Leaderboard[difficulty] = append([]scoreboard.Entry(nil), entries...)
	}
	return copied
}
