package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string
	ServerPort  int
	StaticDir   string
	LogLevel    string

	DBDriver    string
	DatabaseURL string
	AutoMigrate bool

	JWTSecret []byte
	TokenTTL  time.Duration

	StrictStatusCodes bool
	EnforceOwnership  bool

	RateLimitRPS   int
	RateLimitBurst int

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

func Load() Config {
	secret := os.Getenv("MY_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}

	driver := strings.ToLower(EnvDefault("DB_DRIVER", "postgres"))
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && driver == "sqlite" {
		dsn = "file:shop.db?_pragma=foreign_keys(1)"
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "shop_catalog"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 4000),
		StaticDir:   EnvDefault("STATIC_DIR", "public"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		DBDriver:    driver,
		DatabaseURL: dsn,
		AutoMigrate: EnvBoolDefault("AUTO_MIGRATE", true),

		JWTSecret: []byte(secret),
		TokenTTL:  time.Duration(EnvIntDefault("TOKEN_TTL_HOURS", 72)) * time.Hour,

		StrictStatusCodes: EnvBoolDefault("STRICT_STATUS_CODES", false),
		EnforceOwnership:  EnvBoolDefault("ENFORCE_OWNERSHIP", false),

		RateLimitRPS:   EnvIntDefault("RATE_LIMIT_RPS", 20),
		RateLimitBurst: EnvIntDefault("RATE_LIMIT_BURST", 40),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       EnvIntDefault("REDIS_DB", 0),
		CacheTTL:      time.Duration(EnvIntDefault("CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
