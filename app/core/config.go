package core

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/reflectdiary/diary-api/pkg/sqlstore"
)

func MustLoadBaseConfig(path string) CoreConfig {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	conf.applyDefaults()
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.applyDefaults()
	return c
}

type CoreConfig struct {
	Addr     string                `toml:"addr"`
	Log      Log                   `toml:"log"`
	Database sqlstore.ConnectConfig `toml:"database"`
	Security Security              `toml:"security"`
}

type Security struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

func (s Security) TokenTTL() time.Duration {
	return time.Duration(s.TokenTTLHours) * time.Hour
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DIARY_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Database.Driver = os.Getenv("DIARY_DB_DRIVER")
	c.Database.DSN = os.Getenv("DIARY_DB_DSN")
	c.Security.JWTSecret = os.Getenv("DIARY_JWT_SECRET")
}

func (c *CoreConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":3001"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = sqlstore.DRIVER_SQLITE
	}
	if c.Database.DSN == "" && c.Database.Driver == sqlstore.DRIVER_SQLITE {
		c.Database.DSN = "data/diary.db"
	}
	if c.Security.JWTSecret == "" {
		c.Security.JWTSecret = "diary-dev-secret-change-me"
	}
	if c.Security.TokenTTLHours <= 0 {
		c.Security.TokenTTLHours = 24
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DIARY_LOG_LEVEL")
	l.Path = os.Getenv("DIARY_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
