package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server settings
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Debug           bool

	// PipelineTimeout bounds a whole fetch+summarize run.
	PipelineTimeout time.Duration

	// Rate limiting (per client IP)
	RateLimit         int
	RateLimitInterval time.Duration

	// Application paths
	LogDir  string
	TempDir string

	// Run store
	Database DatabaseConfig

	// External collaborators
	YouTube    YouTubeConfig
	Summarizer SummarizerConfig
}

type DatabaseConfig struct {
	Path   string
	RunTTL time.Duration
}

type YouTubeConfig struct {
	// YtDlpPath is the caption fetch binary; resolved via PATH if not absolute.
	YtDlpPath    string
	FetchTimeout time.Duration
	Languages    string

	// Outbound politeness limit for caption fetches.
	FetchesPerMinute int
}

type SummarizerConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	ChunkSize   int
	CallTimeout time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	cfg := &Config{
		ServerPort:      GetEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 5*time.Minute),
		IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		Debug:           getEnvAsBool("DEBUG", false),

		PipelineTimeout: getEnvAsDuration("PIPELINE_TIMEOUT", 5*time.Minute),

		RateLimit:         getEnvAsInt("RATE_LIMIT", 5),
		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 1*time.Second),

		LogDir:  GetEnv("LOG_DIR", "./logs"),
		TempDir: GetEnv("TEMP_DIR", os.TempDir()),

		Database: DatabaseConfig{
			Path:   GetEnv("DB_PATH", "./data/runs.db"),
			RunTTL: getEnvAsDuration("RUN_TTL", 1*time.Hour),
		},

		YouTube: YouTubeConfig{
			YtDlpPath:        GetEnv("YTDLP_PATH", "yt-dlp"),
			FetchTimeout:     getEnvAsDuration("FETCH_TIMEOUT", 60*time.Second),
			Languages:        GetEnv("CAPTION_LANGUAGES", "en,en-US,en-GB"),
			FetchesPerMinute: getEnvAsInt("FETCHES_PER_MINUTE", 30),
		},

		Summarizer: SummarizerConfig{
			APIKey:      GetEnv("OPENAI_API_KEY", ""),
			BaseURL:     GetEnv("OPENAI_BASE_URL", ""),
			Model:       GetEnv("SUMMARY_MODEL", "gpt-4o-mini"),
			ChunkSize:   getEnvAsInt("SUMMARY_CHUNK_SIZE", 2000),
			CallTimeout: getEnvAsDuration("SUMMARY_CALL_TIMEOUT", 2*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.ServerPort == "" {
		return errors.New("server port is required")
	}
	if cfg.Database.Path == "" {
		return errors.New("database path is required")
	}
	if cfg.PipelineTimeout <= 0 {
		return errors.New("pipeline timeout must be greater than 0")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.New("read timeout must be greater than 0")
	}
	if cfg.WriteTimeout <= 0 {
		return errors.New("write timeout must be greater than 0")
	}
	if cfg.IdleTimeout <= 0 {
		return errors.New("idle timeout must be greater than 0")
	}
	if cfg.Summarizer.ChunkSize <= 0 {
		return errors.New("summary chunk size must be greater than 0")
	}
	if cfg.YouTube.YtDlpPath == "" {
		return errors.New("yt-dlp path is required")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid boolean, using default")
	}
	return defaultValue
}
