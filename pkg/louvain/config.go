package louvain

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages solver configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Algorithm parameters
	v.SetDefault("algorithm.repeat", 1)
	v.SetDefault("algorithm.resolution", 1.0)
	v.SetDefault("algorithm.tolerance", 0.0)
	v.SetDefault("algorithm.pass_tolerance", 0.0)
	v.SetDefault("algorithm.tolerance_decline_factor", 1.0)
	v.SetDefault("algorithm.max_iterations", 500)
	v.SetDefault("algorithm.max_passes", 500)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", false)

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for algorithm parameters
func (c *Config) Repeat() int { return c.v.GetInt("algorithm.repeat") }
func (c *Config) Resolution() float64 { return c.v.GetFloat64("algorithm.resolution") }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64("algorithm.tolerance") }
func (c *Config) PassTolerance() float64 {
	return c.v.GetFloat64("algorithm.pass_tolerance")
}
func (c *Config) ToleranceDeclineFactor() float64 {
	return c.v.GetFloat64("algorithm.tolerance_decline_factor")
}
func (c *Config) MaxIterations() int { return c.v.GetInt("algorithm.max_iterations") }
func (c *Config) MaxPasses() int { return c.v.GetInt("algorithm.max_passes") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate rejects option values outside their domain. Called by the solver
// before every run.
func (c *Config) Validate() error {
	if r := c.Resolution(); r <= 0 {
		return fmt.Errorf("resolution must be positive, got %f", r)
	}
	if l := c.MaxIterations(); l < 0 {
		return fmt.Errorf("max_iterations must be non-negative, got %d", l)
	}
	if p := c.MaxPasses(); p < 0 {
		return fmt.Errorf("max_passes must be non-negative, got %d", p)
	}
	if f := c.ToleranceDeclineFactor(); f < 0 {
		return fmt.Errorf("tolerance_decline_factor must be non-negative, got %f", f)
	}
	return nil
}

// CreateLogger creates a zerolog logger based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if !c.EnableProgress() && level < zerolog.InfoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "louvain").Logger()
}
