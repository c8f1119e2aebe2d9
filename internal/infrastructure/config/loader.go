package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoLevels is returned when the levels directory holds no level files.
var ErrNoLevels = errors.New("no levels found")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Levels  []*LevelConfig // in play order
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	var cfg PhysicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.yaml: %w", err)
	}

	return &cfg, nil
}

// ListLevels returns the level IDs under levels/, sorted by file name.
// File names carry a numeric prefix ("01-green-hills.yaml") so the sort
// order is the play order.
func (l *Loader) ListLevels() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "levels/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	sort.Strings(matches)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	return ids, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(id string) (*LevelConfig, error) {
	p := "levels/" + id + ".yaml"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", id, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", id, err)
	}
	cfg.ID = id
	if cfg.Name == "" {
		cfg.Name = id
	}

	return &cfg, nil
}

// LoadLevels loads every level in play order
func (l *Loader) LoadLevels() ([]*LevelConfig, error) {
	ids, err := l.ListLevels()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoLevels
	}

	levels := make([]*LevelConfig, 0, len(ids))
	for _, id := range ids {
		lvl, err := l.LoadLevel(id)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// LoadAll loads all configurations (physics, levels)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Levels:  levels,
	}, nil
}
