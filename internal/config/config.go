package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds every environment-driven setting, TODOR_-prefixed.
type Config struct {
	API struct {
		BaseURL string `envconfig:"BASE_URL" default:"https://jsonplaceholder.typicode.com"`
		// DeleteResource is the path segment DELETE targets. The consumed
		// mock API deletes todos through /posts, so that is the default;
		// a server without the quirk sets this to "todos".
		DeleteResource string `envconfig:"DELETE_RESOURCE" default:"posts"`
		// MaxTodoID is the highest id the server is known to accept for
		// updates and deletes. The mock ships with exactly 200 todos.
		MaxTodoID int `envconfig:"MAX_TODO_ID" default:"200"`
	} `envconfig:"API"`

	Log struct {
		Level string `envconfig:"LEVEL" default:"info"`
		// File receives all log output since the TUI owns the terminal.
		// Empty disables logging.
		File string `envconfig:"FILE" default:"todor.log"`
	} `envconfig:"LOG"`
}

var (
	conf Config
	once sync.Once
)

// New reads a fresh Config from the process environment, loading .env first
// when present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
	var c Config
	if err := envconfig.Process("TODOR", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the process-wide Config, reading the environment once.
func Get() *Config {
	once.Do(func() {
		c, err := New()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to process environment variables")
		}
		conf = *c
	})
	return &conf
}
