package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppPort string
	WSPort  string

	DBDriver string
	DBDSN    string

	JWTSecret     string
	JWTTTL        time.Duration
	SessionCookie string

	UploadDir string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	LogLevel  string
	LogFormat string

	LoginRateLimit int
	CORSOrigins    string
	SecureCookie   bool
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads .env (when present) and the process environment once.
func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Warn(".env file not found, using system environment variables")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv builds a Config from the current environment without caching it.
func FromEnv() *Config {
	c := &Config{
		AppPort:        GetEnv("APP_PORT", "3000"),
		WSPort:         GetEnv("WS_PORT", "3001"),
		DBDriver:       GetEnv("DB_DRIVER", "mysql"),
		DBDSN:          GetEnv("DB_DSN", ""),
		JWTSecret:      GetEnv("JWT_SECRET", ""),
		JWTTTL:         GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		SessionCookie:  GetEnv("SESSION_COOKIE", "session"),
		UploadDir:      GetEnv("UPLOAD_DIR", "./uploads"),
		SMTPHost:       GetEnv("SMTP_HOST", ""),
		SMTPPort:       GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:       GetEnv("SMTP_USER", ""),
		SMTPPassword:   GetEnv("SMTP_PASSWORD", ""),
		MailFrom:       GetEnv("MAIL_FROM", "scheduler@localhost"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFormat:      GetEnv("LOG_FORMAT", "text"),
		LoginRateLimit: GetEnvAsInt("LOGIN_RATE_LIMIT", 10),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		SecureCookie:   GetEnvAsBool("SECURE_COOKIE", false),
	}

	if c.DBDSN == "" {
		switch c.DBDriver {
		case "sqlite":
			c.DBDSN = "scheduler.db"
		case "postgres":
			c.DBDSN = "host=127.0.0.1 user=postgres dbname=scheduler port=5432 sslmode=disable"
		default:
			c.DBDSN = "root:@tcp(127.0.0.1:3306)/scheduler?charset=utf8mb4&parseTime=True&loc=Local"
		}
	}
	if c.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is not set, using an insecure development secret")
		c.JWTSecret = "dev-secret-change-me"
	}
	return c
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
