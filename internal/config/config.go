package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	OpenAIKey             string
	OpenAIBaseURL         string
	OpenAIModel           string
	OpenAITranscribeModel string

	CORSOrigin string
	AuthSecret string

	// TaskExp is the experience granted to every newly created task.
	TaskExp int

	UploadDir      string
	UploadMaxBytes int64
}

// Load reads configuration from the process environment. A .env file in the
// working directory is applied first when present; real env vars win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getString("PORT", "8000"),

		DBDriver:   getString("DB_DRIVER", DriverSQLite),
		DBPath:     getString("DB_PATH", "./lab_dx.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getInt("DB_PORT", 5432),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:         getString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:           getString("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITranscribeModel: getString("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),

		CORSOrigin: getString("CORS_ORIGIN", "http://localhost:3000"),
		AuthSecret: os.Getenv("AUTH_SECRET"),

		TaskExp: getInt("TASK_EXP", 20),

		UploadDir:      getString("UPLOAD_DIR", os.TempDir()),
		UploadMaxBytes: int64(getInt("UPLOAD_MAX_BYTES", 25<<20)),
	}
}

// DemoMode reports whether the provider credential is missing.
func (c *Config) DemoMode() bool {
	return c.OpenAIKey == ""
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverPostgres {
		return c.ConnString()
	}
	return c.DBPath
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}
