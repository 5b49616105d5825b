package config

// Config is the root game configuration
type Config struct {
	Display    DisplayConfig    `toml:"display" yaml:"display"`
	Generation GenerationConfig `toml:"generation" yaml:"generation"`
	Player     PlayerConfig     `toml:"player" yaml:"player"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
}

type DisplayConfig struct {
	Title string `toml:"title" yaml:"title"`
	Scale int    `toml:"scale" yaml:"scale"` // window size multiplier
	TPS   int    `toml:"tps" yaml:"tps"`     // ticks per second
}

type GenerationConfig struct {
	Seed          int64 `toml:"seed" yaml:"seed"`                       // 0 = time based
	StepsPerFrame int   `toml:"steps_per_frame" yaml:"steps_per_frame"` // generation micro-steps per tick
}

type PlayerConfig struct {
	SpeedDivisor int `toml:"speed_divisor" yaml:"speed_divisor"` // speed = 1/divisor cells per tick
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title: "Pacman",
			Scale: 3,
			TPS:   144,
		},
		Generation: GenerationConfig{
			Seed:          0,
			StepsPerFrame: 1,
		},
		Player: PlayerConfig{
			SpeedDivisor: 16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
