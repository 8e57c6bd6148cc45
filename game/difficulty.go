package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Difficulty is a named board configuration
type Difficulty struct {
	Name     string
	Size     int
	NumMines int
}

var (
	Easy   = Difficulty{Name: "Easy", Size: 8, NumMines: 10}
	Medium = Difficulty{Name: "Medium", Size: 10, NumMines: 15}
	Hard   = Difficulty{Name: "Hard", Size: 12, NumMines: 20}
)

// Difficulties lists the presets, easiest first
var Difficulties = []Difficulty{Easy, Medium, Hard}

// LookupDifficulty returns the preset with the given name, ignoring case
func LookupDifficulty(name string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(difficulty.Name, name) {
			return difficulty, nil
		}
	}
	return Difficulty{}, errors.Wrapf(ErrUnknownDifficulty, "%q", name)
}

func (difficulty Difficulty) NumCells() int {
	return difficulty.Size * difficulty.Size
}

func (difficulty Difficulty) String() string {
	return difficulty.Name
}

// DifficultyFor returns the preset matching a board's dimensions, or a
// "Custom" difficulty if none does
func DifficultyFor(size, numMines int) Difficulty {
	for _, difficulty := range Difficulties {
		if difficulty.Size == size && difficulty.NumMines == numMines {
			return difficulty
		}
	}
	return Difficulty{Name: "Custom", Size: size, NumMines: numMines}
}
