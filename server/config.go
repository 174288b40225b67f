package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Muralis01/event-fest/internal/xtime"
	"github.com/Muralis01/event-fest/server/database"
	"github.com/Muralis01/event-fest/server/eazyfest"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := defaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:      ":8085",
			PublicURL: "http://localhost:8085",
		},
		Database: database.Config{
			Host:     "localhost",
			Port:     5432,
			Username: "postgres",
			Password: "password",
			Database: "event-fest",
		},
		EazyFest: eazyfest.Config{
			BaseURL: "http://localhost:8080",
			Every:   xtime.Duration(100 * time.Millisecond),
			Burst:   20,
		},
	}
}

type Config struct {
	Dev      bool            `toml:"dev"`
	Log      LogConfig       `toml:"log"`
	Server   ServerConfig    `toml:"server"`
	Database database.Config `toml:"database"`
	EazyFest eazyfest.Config `toml:"eazyfest"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nLog: %s\nServer: %s\nDatabase: %s\nEazyFest: %s",
		c.Dev,
		c.Log,
		c.Server,
		c.Database,
		c.EazyFest,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	PublicURL string `toml:"public_url"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n PublicURL: %s",
		c.Addr,
		c.PublicURL,
	)
}
