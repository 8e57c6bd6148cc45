package scoreboard

import "sort"

// DefaultLimit is the number of entries kept per difficulty
const DefaultLimit = 5

type Entry struct {
	Name  string `yaml:"name" json:"name"`
	Score int    `yaml:"score" json:"score"`
}

// Scoreboard keeps the best scores of each difficulty, highest first.
// Among equal scores, the most recently recorded comes first.
type Scoreboard struct {
	limit   int
	entries map[string][]Entry
}

func New(limit int) *Scoreboard {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Scoreboard{
		limit:   limit,
		entries: make(map[string][]Entry),
	}
}

// RecordLoss inserts entry into the difficulty's list, keeping the list
// sorted and within the limit
func (board *Scoreboard) RecordLoss(difficulty string, entry Entry) {
	entries := make([]Entry, 0, len(board.entries[difficulty])+1)
	entries = append(entries, entry)
	entries = append(entries, board.entries[difficulty]...)
	board.entries[difficulty] = board.normalize(entries)
}

// Top returns a copy of the difficulty's entries
func (board *Scoreboard) Top(difficulty string) []Entry {
	entries := board.entries[difficulty]
	top := make([]Entry, len(entries))
	copy(top, entries)
	return top
}

func (board *Scoreboard) Difficulties() []string {
	difficulties := make([]string, 0, len(board.entries))
	for difficulty := range board.entries {
		difficulties = append(difficulties, difficulty)
	}
	sort.Strings(difficulties)
	return difficulties
}

// Entries returns a copy of every list, as stored
func (board *Scoreboard) Entries() map[string][]Entry {
	entries := make(map[string][]Entry, len(board.entries))
	for difficulty := range board.entries {
		entries[difficulty] = board.Top(difficulty)
	}
	return entries
}

// Load replaces the board's contents, sorting and truncating each list
func (board *Scoreboard) Load(entries map[string][]Entry) {
	board.entries = make(map[string][]Entry, len(entries))
	for difficulty, list := range entries {
		if len(list) == 0 {
			continue
		}
		loaded := make([]Entry, len(list))
		copy(loaded, list)
		board.entries[difficulty] = board.normalize(loaded)
	}
}

func (board *Scoreboard) normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > board.limit {
		entries = entries[:board.limit]
	}
	return entries
}
