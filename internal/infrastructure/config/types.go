package config

// PhysicsConfig is the root config for physics.yaml.
// All speeds are pixels per frame and all durations are frames; the
// simulation runs at a fixed Display.Framerate.
type PhysicsConfig struct {
	Display DisplayConfig   `yaml:"display"`
	Physics PhysicsSettings `yaml:"physics"`
	Player  PlayerConfig    `yaml:"player"`
	Enemy   EnemyConfig     `yaml:"enemy"`
	Items   ItemsConfig     `yaml:"items"`
	Scoring ScoringConfig   `yaml:"scoring"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"moveSpeed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`
	Lives     int     `yaml:"lives"`

	// InvulnerabilityFrames is the post-damage window during which
	// further damage is ignored.
	InvulnerabilityFrames int `yaml:"invulnerabilityFrames"`
	StarFrames            int `yaml:"starFrames"`

	StompBounce    float64 `yaml:"stompBounce"`
	StompTolerance float64 `yaml:"stompTolerance"`
}

type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	PatrolRange float64 `yaml:"patrolRange"`
	SnapStep    float64 `yaml:"snapStep"`
}

type ItemsConfig struct {
	CoinSize    float64 `yaml:"coinSize"`
	PowerUpSize float64 `yaml:"powerUpSize"`
}

type ScoringConfig struct {
	Coin    int `yaml:"coin"`
	PowerUp int `yaml:"powerUp"`
	Stomp   int `yaml:"stomp"`
	Goal    int `yaml:"goal"`
}
