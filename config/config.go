package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	GraphQL GraphQLConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            int
	Path            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type GraphQLConfig struct {
	MaxDepth      int
	Introspection bool
}

type LogConfig struct {
	Level       string
	Development bool
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads config.yaml from paths (default ".") and applies DRIVERAPI_*
// environment overrides. A missing config file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("driverapi")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.path", "/graphql")
	v.SetDefault("server.readtimeout", 5*time.Second)
	v.SetDefault("server.writetimeout", 10*time.Second)
	v.SetDefault("server.shutdowntimeout", 5*time.Second)
	v.SetDefault("graphql.maxdepth", 15)
	v.SetDefault("graphql.introspection", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		return fmt.Errorf("server path %q must start with /", c.Server.Path)
	}
	if c.GraphQL.MaxDepth < 0 {
		return fmt.Errorf("invalid graphql max depth %d", c.GraphQL.MaxDepth)
	}
	return nil
}
