package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	MigrationsDir   string
	JWTSecret       string
	JWTExpiry       time.Duration
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	CloudinaryURL   string
	CloudName       string
	CloudAPIKey     string
	CloudAPISecret  string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	AdminEmail      string
	OriginURL       string
	LogLevel        string
	MaxUploadSize   int64
	CartTTL         time.Duration
	ListingCacheTTL time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "lokalin"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", "database/migration"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getDuration("JWT_EXPIRY", 24*time.Hour),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CloudinaryURL:   os.Getenv("CLOUDINARY_URL"),
		CloudName:       os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudAPIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudAPISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        smtpPort,
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        getEnv("SMTP_FROM", "no-reply@lokal.in"),
		AdminEmail:      strings.ToLower(getEnv("ADMIN_EMAIL", "lokalin@gmail.com")),
		OriginURL:       os.Getenv("ORIGIN_URL"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MaxUploadSize:   maxUploadSize,
		CartTTL:         getDuration("CART_TTL", 30*time.Minute),
		ListingCacheTTL: getDuration("LISTING_CACHE_TTL", 5*time.Minute),
	}

	SetupLogger(AppConfig.AppEnv, AppConfig.LogLevel)

	log.Info().
		Str("env", AppConfig.AppEnv).
		Str("port", AppConfig.Port).
		Msg("Configuration loaded successfully")
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
