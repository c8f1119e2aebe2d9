package config

// LevelConfig is the root config for levels/*.yaml files
type LevelConfig struct {
	// ID is derived from the file name, not read from YAML.
	ID        string               `yaml:"-"`
	Name      string               `yaml:"name"`
	Spawn     PositionConfig       `yaml:"spawn"`
	Goal      RectConfig           `yaml:"goal"`
	Platforms []PlatformConfig     `yaml:"platforms"`
	Enemies   []EnemySpawnConfig   `yaml:"enemies"`
	Coins     []PositionConfig     `yaml:"coins"`
	PowerUps  []PowerUpSpawnConfig `yaml:"powerUps"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PlatformConfig struct {
	RectConfig `yaml:",inline"`
	Kind       string `yaml:"kind"`
}

// EnemySpawnConfig places a patrolling enemy. Zero Speed or Range fall
// back to the enemy defaults in physics.yaml.
type EnemySpawnConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed,omitempty"`
	Range float64 `yaml:"range,omitempty"`
	Right bool    `yaml:"right,omitempty"` // start walking right instead of left
}

type PowerUpSpawnConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}
