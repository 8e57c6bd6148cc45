package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scoreboard"
	"github.com/they4kman/sweeper/storage"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Play Minesweeper and keep a scoreboard",
	Long: `sweeper is a Minesweeper game played from the terminal, keeping
the best scores of each difficulty between runs.

Play a game
	sweeper play

Make the computer play for you
	sweeper play -director

Show the scoreboard
	sweeper scores
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (diffVal *difficultyValue) String() string {
	return game.Difficulty(*diffVal).Name
}

func (diffVal *difficultyValue) Set(value string) error {
	difficulty, err := game.LookupDifficulty(value)
	if err != nil {
		return err
	}
	*diffVal = difficultyValue(difficulty)
	return nil
}

func (diffVal *difficultyValue) Type() string {
	return "difficulty"
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".sweeper")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("sweeper")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.Wrap(err, "reading config")
		}
	}
	return nil
}

func newLogger(out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	logger.SetLevel(level)
	return logger, nil
}

func storePath(kind string) string {
	if path := viper.GetString("store-path"); path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "sweeper", storage.DefaultFilename(kind))
}

// openKeeper loads the scoreboard from the configured store. The returned
// function releases the store.
func openKeeper(logger logrus.FieldLogger) (*scoreboard.Keeper, func(), error) {
	kind := viper.GetString("store")
	path := storePath(kind)

	store, err := storage.Open(kind, path)
	if err != nil {
		return nil, nil, err
	}
	logger.WithFields(logrus.Fields{"store": kind, "path": path}).Debug("opened scoreboard store")

	release := func() {
		if closer, ok := store.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.WithError(err).Warn("cannot close scoreboard store")
			}
		}
	}

	return scoreboard.NewKeeper(store, logger), release, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.sweeper.yaml)")
	flags.String("store", storage.KindYAML, "Where to keep scores: yaml, sqlite or memory")
	flags.String("store-path", "", "Path of the score store (default in the user config directory)")
	flags.String("log-level", "warning", "Log level: debug, info, warning or error")

	for _, key := range []string{"store", "store-path", "log-level"} {
		viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(playCmd, scoresCmd, nameCmd)
}
