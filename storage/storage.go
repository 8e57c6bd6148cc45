package storage

import (
	"github.com/pkg/errors"

	"github.com/they4kman/sweeper/scoreboard"
)

const (
	KindYAML   = "yaml"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

var ErrUnknownKind = errors.New("unknown store kind")

// Open returns the store of the given kind at path. Stores holding resources
// implement io.Closer.
func Open(kind, path string) (scoreboard.Store, error) {
	switch kind {
	case KindYAML, "":
		return NewFileStore(path), nil
	case KindSQLite:
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case KindMemory:
		return NewMemoryStore(), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

// DefaultFilename returns the file name used for a kind of store
func DefaultFilename(kind string) string {
	if kind == KindSQLite {
		return "scores.db"
	}
	return "scores.yaml"
}
