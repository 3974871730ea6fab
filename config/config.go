package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
)

var ErrMissingToken = errors.New("DISCORD_TOKEN is required")

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string `env:"DISCORD_TOKEN"`
	GuildID      string `env:"GUILD_ID"` // Register commands to one guild instead of globally

	// Calculation limits
	MaxExamples    int `env:"MAX_EXAMPLES" envDefault:"20"`
	MaxPascalRows  int `env:"MAX_PASCAL_ROWS" envDefault:"15"`
	MaxSimulations int `env:"MAX_SIMULATIONS" envDefault:"100000"`
	MaxTreeLeaves  int `env:"MAX_TREE_LEAVES" envDefault:"64"`
	MaxCountInput  int `env:"MAX_COUNT_INPUT" envDefault:"1000"` // Grid size and pool sizes for paths and teams

	// RandomSeed fixes the random source; 0 seeds from crypto/rand
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	// Observability
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"` // "text" or "json"

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = Load()
		if err != nil {
			if os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// Init loads the global configuration once and returns the load error
// instead of panicking, so entry points can report a malformed environment.
// A configuration set earlier (e.g. by tests) is returned unchanged.
func Init() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	instance = cfg
	return instance, nil
}

// Load reads configuration from environment variables and clamps the
// calculation limits to sane values.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.MaxExamples <= 0 {
		c.MaxExamples = 20
	}
	if c.MaxPascalRows < 0 || c.MaxPascalRows > 15 {
		c.MaxPascalRows = 15
	}
	if c.MaxSimulations <= 0 {
		c.MaxSimulations = 100000
	}
	if c.MaxTreeLeaves <= 0 {
		c.MaxTreeLeaves = 64
	}
	if c.MaxCountInput <= 0 {
		c.MaxCountInput = 1000
	}
}

// ValidateForBot checks the settings only the Discord bot needs.
func (c *Config) ValidateForBot() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SetTestConfig sets a test configuration (only for use in tests)
func SetTestConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// ResetConfig clears the cached configuration (only for use in tests)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a configuration with test defaults
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:   "test-token",
		MaxExamples:    20,
		MaxPascalRows:  15,
		MaxSimulations: 100000,
		MaxTreeLeaves:  64,
		MaxCountInput:  1000,
		RandomSeed:     1,
		MetricsAddr:    ":0",
		LogLevel:       "debug",
		LogFormat:      "text",
		Environment:    "test",
	}
}
