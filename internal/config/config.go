package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	AI       AIConfig
	GitHub   GitHubConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// AIConfig points at the OpenAI-compatible completion gateway. The API key
// is a hard requirement: every analysis handler depends on it.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GitHubConfig struct {
	BaseURL string
}

const (
	defaultAIBaseURL     = "https://ai.gateway.lovable.dev/v1"
	defaultAIModel       = "google/gemini-2.5-flash"
	defaultGitHubBaseURL = "https://api.github.com"

	defaultAccessExpiresIn  = 15 * time.Minute
	defaultRefreshExpiresIn = 7 * 24 * time.Hour
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optOr := func(key, fallback string) string {
		if v := opt(key); v != "" {
			return v
		}
		return fallback
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: parseDuration(opt("DB_CONNECT_TIMEOUT"), 0),
		PoolMaxConns:   int32(parseInt(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns:   int32(parseInt(opt("DB_POOL_MIN_CONNS"), 0)),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  parseDuration(opt("JWT_ACCESS_EXPIRES_IN"), defaultAccessExpiresIn),
		RefreshExpiresIn: parseDuration(opt("JWT_REFRESH_EXPIRES_IN"), defaultRefreshExpiresIn),
	}

	cfg.Redis = RedisConfig{
		Host:     optOr("REDIS_HOST", "localhost"),
		Port:     optOr("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.AI = AIConfig{
		APIKey:  req("AI_GATEWAY_API_KEY"),
		BaseURL: optOr("AI_GATEWAY_BASE_URL", defaultAIBaseURL),
		Model:   optOr("AI_MODEL", defaultAIModel),
	}

	cfg.GitHub = GitHubConfig{
		BaseURL: optOr("GITHUB_API_BASE_URL", defaultGitHubBaseURL),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
