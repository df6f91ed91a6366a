package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Auth      AuthConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string
	PublicBaseURL   string
	Timezone        string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type AuthConfig struct {
	CodeTTL     time.Duration
	MaxAttempts int
}

// MailConfig 未設定 Host 時改用 log mailer
type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type RateLimitConfig struct {
	RSVPRequests int
	RSVPWindow   time.Duration
	AuthRequests int
	AuthWindow   time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	// 沒有 .env 時直接使用系統環境變數
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Session:   GetSessionConfig(),
		Auth:      GetAuthConfig(),
		Mail:      GetMailConfig(),
		RateLimit: GetRateLimitConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			PublicBaseURL:   "https://partylink.co",
			Timezone:        "Asia/Singapore",
			ShutdownTimeout: time.Second,
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Session: SessionConfig{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "partylink_session",
		},
		Auth: AuthConfig{
			CodeTTL:     5 * time.Minute,
			MaxAttempts: 5,
		},
		RateLimit: RateLimitConfig{
			RSVPRequests: 30,
			RSVPWindow:   time.Minute,
			AuthRequests: 5,
			AuthWindow:   time.Minute,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnv("PORT", "8080"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "https://partylink.co"),
		Timezone:        getEnv("APP_TIMEZONE", "Asia/Singapore"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "partylink"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetSessionConfig() SessionConfig {
	return SessionConfig{
		Secret:     getEnv("SESSION_SECRET", "dev-secret-change-me"),
		TTL:        getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		CookieName: getEnv("SESSION_COOKIE_NAME", "partylink_session"),
		Secure:     getEnvBool("SESSION_COOKIE_SECURE", true),
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		CodeTTL:     getEnvDuration("AUTH_CODE_TTL", 10*time.Minute),
		MaxAttempts: getEnvInt("AUTH_MAX_ATTEMPTS", 5),
	}
}

func GetMailConfig() MailConfig {
	return MailConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "Partylink <hello@partylink.co>"),
	}
}

func GetRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RSVPRequests: getEnvInt("RSVP_RATE_LIMIT", 30),
		RSVPWindow:   getEnvDuration("RSVP_RATE_WINDOW", time.Minute),
		AuthRequests: getEnvInt("AUTH_RATE_LIMIT", 5),
		AuthWindow:   getEnvDuration("AUTH_RATE_WINDOW", 15*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		panic(err)
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		panic(err)
	}
	return d
}
