package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins []string

	DBDriver    string
	DBURI       string
	DBName      string
	DatabaseURL string
	DBTimeout   time.Duration

	JWT        JWTConfig
	BcryptCost int

	PostsPageSize       int
	AuthRateLimit       int
	EnforceActiveStatus bool
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the environment, honouring a .env file when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg := Config{
		Port:        getEnv("PORT", "5000"),
		Env:         strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:5173")),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		DBURI:       getEnv("DB_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "blogify"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBTimeout:   getDuration("DB_TIMEOUT", 10*time.Second),

		BcryptCost: getInt("BCRYPT_COST", 10),

		PostsPageSize:       getInt("POSTS_PAGE_SIZE", 10),
		AuthRateLimit:       getInt("AUTH_RATE_LIMIT", 10),
		EnforceActiveStatus: getBool("ENFORCE_ACTIVE_STATUS", false),
	}
	cfg.JWT = loadJWTConfig(cfg.IsProduction())

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
