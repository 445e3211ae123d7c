package summary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaults embed.FS

// Store resolves the curated summary record for a video key. Records are
// versioned YAML data files compiled into the binary; an optional override
// directory takes precedence per key, so content edits don't require a
// rebuild.
type Store struct {
	overrideDir string
}

func NewStore(overrideDir string) Store {
	return Store{overrideDir: overrideDir}
}

func (s Store) Record(key string) (Record, error) {
	if s.overrideDir != "" {
		b, err := os.ReadFile(filepath.Join(s.overrideDir, key+".yaml"))
		switch {
		case err == nil:
			return parseRecord(key, b)
		case !errors.Is(err, fs.ErrNotExist):
			return Record{}, fmt.Errorf("summary override for %s: %w", key, err)
		}
	}

	b, err := defaults.ReadFile("data/" + key + ".yaml")
	if err != nil {
		return Record{}, fmt.Errorf("no summary record for %s: %w", key, err)
	}
	return parseRecord(key, b)
}

func parseRecord(key string, b []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(b, &r); err != nil {
		return Record{}, fmt.Errorf("parse summary record %s: %w", key, err)
	}
	return r, nil
}
