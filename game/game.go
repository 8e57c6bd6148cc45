package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ResultRecorder is notified once per session, when it is won or lost
type ResultRecorder interface {
	RecordLoss(difficulty string, score int)
	RecordWin(difficulty string, score int)
}

type GameConfig struct {
	// Seed for the source each board's seed is drawn from; 0 seeds from the clock
	Seed int64

	Results ResultRecorder
	Logger  logrus.FieldLogger

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Logger: logrus.StandardLogger(),
	}
}

// Engine starts sessions and keeps the state shared between them
type Engine struct {
	config GameConfig
	rand   *rand.Rand
	log    logrus.FieldLogger

	wins int
}

func NewEngine(config GameConfig) *Engine {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		log:    logger,
	}
}

// Wins returns the number of sessions won since the engine was created
func (engine *Engine) Wins() int {
	return engine.wins
}

// StartSession begins a session on a fresh board of the named difficulty
func (engine *Engine) StartSession(name string) (*Session, error) {
	difficulty, err := LookupDifficulty(name)
	if err != nil {
		return nil, err
	}
	return engine.NewSession(difficulty)
}

// NewSession begins a session on a fresh board. It can only fail for a
// difficulty outside the presets.
func (engine *Engine) NewSession(difficulty Difficulty) (*Session, error) {
	board, err := GenerateSeeded(difficulty.Size, difficulty.NumMines, engine.rand.Int63())
	if err != nil {
		return nil, err
	}
	return engine.SessionFromBoard(difficulty, board), nil
}

// SessionFromBoard begins a session on an existing board
func (engine *Engine) SessionFromBoard(difficulty Difficulty, board *Board) *Session {
	session := &Session{
		engine:     engine,
		board:      board,
		difficulty: difficulty,
		phase:      Idle,
		log: engine.log.WithFields(logrus.Fields{
			"difficulty": difficulty.Name,
			"seed":       board.seed,
		}),
	}
	session.log.Debug("session started")
	return session
}

func (engine *Engine) onGameEnd(session *Session) {
	switch session.phase {
	case Won:
		engine.wins++
		if engine.config.Results != nil {
			engine.config.Results.RecordWin(session.difficulty.Name, session.score)
		}
	case Lost:
		if engine.config.Results != nil {
			engine.config.Results.RecordLoss(session.difficulty.Name, session.score)
		}
	}

	engine.saveSnapshot(session)
}

func (engine *Engine) saveSnapshot(session *Session) {
	dir := engine.config.SavedSnapshotsDir
	if dir == "" {
		return
	}

	log := session.log.WithField("dir", dir)

	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("cannot save snapshot")
			return
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			log.WithError(err).Warn("cannot create snapshot directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Warn("snapshot path is not a directory; not saving snapshot")
		return
	}

	serialized, err := session.board.Snapshot().Serialize()
	if err != nil {
		log.WithError(err).Warn("cannot save snapshot")
		return
	}

	path := filepath.Join(dir, generateReplayFilename(session, time.Now()))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		log.WithError(err).Warn("cannot save snapshot")
		return
	}
	log.WithField("path", path).Debug("snapshot saved")
}

func generateReplayFilename(session *Session, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch session.phase {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
