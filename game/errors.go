package game

import "github.com/pkg/errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrIndexOutOfBounds     = errors.New("cell index out of bounds")
	ErrUnknownDifficulty    = errors.New("unknown difficulty")
	ErrInvalidSnapshot      = errors.New("invalid board snapshot")
)
