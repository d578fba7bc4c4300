package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	ServerAddr      string
	FrontendOrigins []string

	UpstreamBaseURL string
	UpstreamSecret  string

	BookingLeadDays    int
	BookingHorizonDays int
	WorkDayStart       string
	WorkDayEnd         string
	SlotStepMinutes    int
	SlotBlocksNeeded   int

	RateLimitBookings     int
	RateLimitAvailability int
	RateLimitWindowSec    int

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	SessionTTLMinutes int

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "America/Montreal"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins: splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:5173")),

		UpstreamBaseURL: getEnv("DISPATCH_BASE_URL", ""),
		UpstreamSecret:  getEnv("DISPATCH_API_SECRET", ""),

		BookingLeadDays:    getEnvInt("BOOKING_LEAD_DAYS", 2),
		BookingHorizonDays: getEnvInt("BOOKING_HORIZON_DAYS", 42),
		WorkDayStart:       getEnv("WORK_DAY_START", "08:00"),
		WorkDayEnd:         getEnv("WORK_DAY_END", "17:00"),
		SlotStepMinutes:    getEnvInt("SLOT_STEP_MINUTES", 60),
		SlotBlocksNeeded:   getEnvInt("SLOT_BLOCKS_NEEDED", 2),

		RateLimitBookings:     getEnvInt("RATE_LIMIT_BOOKINGS", 5),
		RateLimitAvailability: getEnvInt("RATE_LIMIT_AVAILABILITY", 20),
		RateLimitWindowSec:    getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 300),

		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 120),

		Timezone: loc,
	}

	return cfg, nil
}
