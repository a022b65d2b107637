package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver        string
	DBDSN           string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxLife   time.Duration
	SkipMigrations  bool
	CORSOrigins     []string
	RedisAddress    string
	DashboardTTL    time.Duration
	DashboardPush   string
	RateLimitPerSec int
	RateLimitBurst  int
}

// Load reads the process environment. Call godotenv.Load first.
func Load() Config {
	cfg := Config{
		Port:            stringFromEnv("PORT", "8080"),
		GinMode:         os.Getenv("GIN_MODE"),
		DBDriver:        strings.ToLower(stringFromEnv("DB_DRIVER", "mysql")),
		DBMaxOpenConns:  intFromEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  intFromEnv("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLife:   time.Duration(intFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second,
		SkipMigrations:  strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true"),
		CORSOrigins:     splitAndTrim(stringFromEnv("CORS_ORIGINS", "*")),
		RedisAddress:    strings.TrimSpace(os.Getenv("REDIS_ADDRESS")),
		DashboardTTL:    time.Duration(intFromEnv("DASHBOARD_CACHE_TTL_SECONDS", 15)) * time.Second,
		DashboardPush:   stringFromEnv("DASHBOARD_PUSH_SCHEDULE", "@every 1m"),
		RateLimitPerSec: intFromEnv("RATE_LIMIT_PER_SECOND", 20),
		RateLimitBurst:  intFromEnv("RATE_LIMIT_BURST", 40),
	}
	cfg.DBDSN = buildDSN(cfg.DBDriver)
	return cfg
}

func buildDSN(driver string) string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := stringFromEnv("DB_HOST", "127.0.0.1")
	name := stringFromEnv("DB_NAME", "payroll")

	switch driver {
	case "postgres":
		port := stringFromEnv("DB_PORT", "5432")
		return "host=" + host + " user=" + user + " password=" + password +
			" dbname=" + name + " port=" + port + " sslmode=disable TimeZone=UTC"
	case "sqlite":
		return name + ".db"
	default:
		port := stringFromEnv("DB_PORT", "3306")
		return user + ":" + password + "@tcp(" + host + ":" + port + ")/" + name +
			"?charset=utf8mb4&parseTime=True&loc=UTC"
	}
}

func stringFromEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
