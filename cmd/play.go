package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scoreboard"
)

var playDifficulty game.Difficulty

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play Minesweeper by typing commands, one per line:

	r X Y | r INDEX   reveal a cell
	f X Y | f INDEX   flag or unflag a cell
	c X Y | c INDEX   reveal around a number whose mines are all flagged
	n [DIFFICULTY]    start a new game
	s                 show the scoreboard
	q                 quit
`,
	RunE: runPlay,
}

const playHelp = `r X Y | r INDEX   reveal a cell
f X Y | f INDEX   flag or unflag a cell
c X Y | c INDEX   chord around a number
n [DIFFICULTY]    new game (Easy, Medium, Hard)
s                 scoreboard
q                 quit
`

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	keeper, release, err := openKeeper(logger)
	if err != nil {
		return err
	}
	defer release()

	if name := viper.GetString("name"); name != "" && name != keeper.Name() {
		keeper.SetName(name)
	}

	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	config := game.NewGameConfig()
	config.Seed = seed
	config.Results = keeper
	config.Logger = logger
	config.SavedSnapshotsDir = viper.GetString("snapshots-dir")
	engine := game.NewEngine(config)

	session, err := firstSession(engine)
	if err != nil {
		return err
	}

	p := &player{
		engine:  engine,
		keeper:  keeper,
		session: session,
		out:     cmd.OutOrStdout(),
		log:     logger,
	}
	if viper.GetBool("director") {
		p.director = random.New(rand.New(rand.NewSource(seed)))
	}

	return p.run(cmd.InOrStdin(), viper.GetDuration("tick"), viper.GetDuration("director-interval"))
}

func firstSession(engine *game.Engine) (*game.Session, error) {
	if path := viper.GetString("snapshot"); path != "" {
		in, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading snapshot")
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return nil, err
		}
		board, err := snapshot.CreateBoard(viper.GetBool("snapshot-fresh"))
		if err != nil {
			return nil, err
		}
		return engine.SessionFromBoard(game.DifficultyFor(board.Size(), board.NumMines()), board), nil
	}

	return engine.StartSession(viper.GetString("difficulty"))
}

// player feeds user input, ticks and director moves to the session, one at
// a time
type player struct {
	engine   *game.Engine
	keeper   *scoreboard.Keeper
	session  *game.Session
	director game.Director

	out io.Writer
	log logrus.FieldLogger
}

func (p *player) run(in io.Reader, tick, directorInterval time.Duration) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			p.log.WithError(err).Warn("cannot read input")
		}
	}()

	var ticks <-chan time.Time
	if tick > 0 {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		ticks = ticker.C
	}

	var directorTicks <-chan time.Time
	if p.director != nil && directorInterval > 0 {
		ticker := time.NewTicker(directorInterval)
		defer ticker.Stop()
		directorTicks = ticker.C
	}

	p.render()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := p.handle(line); quit {
				return nil
			}
		case <-ticks:
			p.session.Tick()
		case <-directorTicks:
			p.directorAct()
		}
	}
}

func (p *player) render() {
	renderSession(p.out, p.session, p.engine.Wins())
}

func (p *player) directorAct() {
	action, ok := p.director.Next(p.session)
	if !ok {
		return
	}
	p.apply(action)
}

func (p *player) apply(action game.CellAction) {
	wasTerminal := p.session.Phase().IsTerminal()
	if err := p.session.Apply(action); err != nil {
		fmt.Fprintln(p.out, err)
		return
	}
	p.render()

	if !wasTerminal && p.session.Phase().IsTerminal() {
		difficulty := p.session.Difficulty().Name
		renderScores(p.out, difficulty, p.keeper.Top(difficulty))
	}
}

// handle runs one line of input, returning true when the user quits
func (p *player) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		p.render()
		return false
	}

	switch verb := strings.ToLower(fields[0]); verb {
	case "q", "quit", "exit":
		return true
	case "?", "h", "help":
		fmt.Fprint(p.out, playHelp)
	case "s", "scores":
		difficulty := p.session.Difficulty().Name
		renderScores(p.out, difficulty, p.keeper.Top(difficulty))
	case "n", "new":
		difficulty := p.session.Difficulty()
		if len(fields) > 1 {
			var err error
			if difficulty, err = game.LookupDifficulty(fields[1]); err != nil {
				fmt.Fprintln(p.out, err)
				return false
			}
		}
		session, err := p.engine.NewSession(difficulty)
		if err != nil {
			fmt.Fprintln(p.out, err)
			return false
		}
		p.session = session
		p.render()
	default:
		action, err := parseCellAction(verb, fields[1:], p.session.Board().Size())
		if err != nil {
			fmt.Fprintln(p.out, err)
			return false
		}
		p.apply(action)
	}
	return false
}

var actionVerbs = map[string]game.ActionType{
	"r":      game.Click,
	"reveal": game.Click,
	"f":      game.RightClick,
	"flag":   game.RightClick,
	"c":      game.MiddleClick,
	"chord":  game.MiddleClick,
}

// parseCellAction reads a cell either as a row-major index or as X Y
// coordinates. Range checks are left to the session.
func parseCellAction(verb string, args []string, size int) (game.CellAction, error) {
	actionType, ok := actionVerbs[verb]
	if !ok {
		return game.CellAction{}, errors.Errorf("unknown command %q; type ? for help", verb)
	}

	numbers := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return game.CellAction{}, errors.Errorf("%q is not a number", arg)
		}
		numbers[i] = n
	}

	switch len(numbers) {
	case 1:
		return game.CellAction{Index: numbers[0], Action: actionType}, nil
	case 2:
		x, y := numbers[0], numbers[1]
		if x < 0 || y < 0 || x >= size || y >= size {
			return game.CellAction{}, errors.Errorf("(%d, %d) is off the board", x, y)
		}
		return game.CellAction{Index: y*size + x, Action: actionType}, nil
	}
	return game.CellAction{}, errors.Errorf("%s takes a cell index or X Y coordinates", verb)
}

func init() {
	flags := playCmd.Flags()
	flags.VarP(newDifficultyValue(game.Medium, &playDifficulty), "difficulty", "l", "Difficulty: Easy, Medium or Hard")
	flags.String("name", "", "Name to record on the scoreboard (remembered)")
	flags.Int64("seed", 0, "Seed for mine placement (default from the clock)")
	flags.Duration("tick", time.Second, "Time between timer ticks; 0 stops the clock")
	flags.String("snapshot", "", "Play the board saved in this snapshot file")
	flags.Bool("snapshot-fresh", true, "Start snapshot boards with every cell hidden")
	flags.String("snapshots-dir", "", "Directory to save the final board of every game to")
	flags.BoolP("director", "d", false, "Make the computer play")
	flags.Duration("director-interval", 500*time.Millisecond, "Time between computer moves")

	for _, key := range []string{
		"difficulty", "name", "seed", "tick", "snapshot", "snapshot-fresh",
		"snapshots-dir", "director", "director-interval",
	} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}
