package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxRecords is the per-user record cap when none is configured.
const DefaultMaxRecords = 10

type Config struct {
	BotToken          string
	DatabaseURL       string
	DatabaseType      string
	MaxRecordsPerUser int
	Port              int // health listener; 0 disables it
	LogSalt           string
	Debug             bool
}

// LoadEnv reads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; existing variables
// are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ballotcheck", flag.ContinueOnError)

	fs.StringVar(&cfg.BotToken, "token", "", "Telegram bot token (prefer env)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.MaxRecordsPerUser, "max-records", 0, "Maximum records per user")
	fs.IntVar(&cfg.Port, "p", 0, "Health listener port")
	fs.StringVar(&cfg.LogSalt, "log-salt", "", "Salt for hashing user ids in logs (prefer env)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("BOT_TOKEN")
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("bot token required (use -token or BOT_TOKEN env)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.MaxRecordsPerUser == 0 {
		if s := os.Getenv("MAX_RECORDS_PER_USER"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid MAX_RECORDS_PER_USER env variable")
			}
			cfg.MaxRecordsPerUser = n
		} else {
			cfg.MaxRecordsPerUser = DefaultMaxRecords
		}
	}
	if cfg.MaxRecordsPerUser < 1 {
		return Config{}, errors.New("max records per user must be at least 1")
	}

	if cfg.Port == 0 {
		if s := os.Getenv("PORT"); s != "" {
			port, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}

	if cfg.LogSalt == "" {
		cfg.LogSalt = os.Getenv("LOG_SALT")
	}

	if !cfg.Debug {
		if s := os.Getenv("DEBUG"); s != "" {
			debug, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	return cfg, nil
}
