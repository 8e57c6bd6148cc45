package scoreboard

import "github.com/sirupsen/logrus"

// AnonymousName is recorded for losses when no display name is set
const AnonymousName = "Anonymous"

// State is everything persisted between runs
type State struct {
	Leaderboard map[string][]Entry `yaml:"leaderboard"`
	Name        string             `yaml:"name"`
}

// Store persists State. Load on a store that has never been saved to
// returns an empty State.
type Store interface {
	Load() (State, error)
	Save(State) error
}

// Keeper owns the process-wide scoreboard and display name. It loads them
// once when created and saves them after every change. Storage failures are
// logged, never returned: a failed load starts empty, a failed save keeps the
// in-memory state.
type Keeper struct {
	store Store
	log   logrus.FieldLogger

	board *Scoreboard
	name  string
}

func NewKeeper(store Store, logger logrus.FieldLogger) *Keeper {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	keeper := &Keeper{
		store: store,
		log:   logger,
		board: New(DefaultLimit),
	}

	state, err := store.Load()
	if err != nil {
		keeper.log.WithError(err).Warn("cannot load scoreboard; starting empty")
		return keeper
	}

	keeper.board.Load(state.Leaderboard)
	keeper.name = state.Name
	return keeper
}

func (keeper *Keeper) Name() string {
	return keeper.name
}

func (keeper *Keeper) SetName(name string) {
	keeper.name = name
	keeper.save()
}

func (keeper *Keeper) Top(difficulty string) []Entry {
	return keeper.board.Top(difficulty)
}

func (keeper *Keeper) Difficulties() []string {
	return keeper.board.Difficulties()
}

func (keeper *Keeper) RecordLoss(difficulty string, score int) {
	name := keeper.name
	if name == "" {
		name = AnonymousName
	}

	keeper.board.RecordLoss(difficulty, Entry{Name: name, Score: score})
	keeper.log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"name":       name,
		"score":      score,
	}).Debug("loss recorded")
	keeper.save()
}

// RecordWin only logs: wins do not make it onto the scoreboard
func (keeper *Keeper) RecordWin(difficulty string, score int) {
	keeper.log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"score":      score,
	}).Debug("win not recorded on scoreboard")
}

func (keeper *Keeper) save() {
	state := State{
		Leaderboard: keeper.board.Entries(),
		Name:        keeper.name,
	}
	if err := keeper.store.Save(state); err != nil {
		keeper.log.WithError(err).Warn("cannot save scoreboard")
	}
}
