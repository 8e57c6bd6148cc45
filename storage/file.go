package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/sweeper/scoreboard"
)

// FileStore keeps the scoreboard state in a YAML file
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (store *FileStore) Path() string {
	return store.path
}

func (store *FileStore) Load() (scoreboard.State, error) {
	var state scoreboard.State

	in, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, errors.Wrapf(err, "reading %s", store.path)
	}

	if err := yaml.Unmarshal(in, &state); err != nil {
		return scoreboard.State{}, errors.Wrapf(err, "parsing %s", store.path)
	}
	return state, nil
}

// Save writes the state to a temporary file and moves it into place, so a
// failed write never leaves a truncated file behind
func (store *FileStore) Save(state scoreboard.State) error {
	out, err := yaml.Marshal(&state)
	if err != nil {
		return errors.Wrap(err, "serializing scoreboard")
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(store.path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), store.path), "replacing %s", store.path)
}
