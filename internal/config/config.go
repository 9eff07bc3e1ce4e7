package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisURL string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Moderator access
	ModeratorEmails  string
	ModeratorUserIDs string
	ModeratorToken   string

	// Server
	Port        string
	CORSOrigins string

	Moderation ModerationConfig
}

// ModerationConfig holds every trust-and-safety tunable. All values are
// env-overridable; unparsable or missing values fall back to the defaults.
type ModerationConfig struct {
	// Escalation thresholds
	FlagForReviewThreshold    int
	AutoDeleteThreshold       int
	DeleteAndTempBanThreshold int
	UniqueReportersMin        int
	AutoDeleteUniqueMin       int
	DeleteAndBanUniqueMin     int

	// Suspension durations
	TempBanDuration      time.Duration
	ShortSuspension      time.Duration
	ExtendedSuspension   time.Duration
	PermanentHorizon     time.Duration
	SweepSchedule        string
	SuspensionStatusTTL  time.Duration

	// Reputation penalties and bonuses
	RejectPenalty        int
	DismissPenalty       int
	CommentDeletePenalty int
	SuspensionPenalty    int
	RestorationBonus     int
}

// DefaultModeration returns the built-in moderation tunables, used verbatim
// when the environment provides no overrides.
func DefaultModeration() ModerationConfig {
	return ModerationConfig{
		FlagForReviewThreshold:    3,
		AutoDeleteThreshold:       5,
		DeleteAndTempBanThreshold: 8,
		UniqueReportersMin:        3,
		AutoDeleteUniqueMin:       5,
		DeleteAndBanUniqueMin:     8,

		TempBanDuration:     7 * 24 * time.Hour,
		ShortSuspension:     24 * time.Hour,
		ExtendedSuspension:  7 * 24 * time.Hour,
		PermanentHorizon:    100 * 365 * 24 * time.Hour,
		SweepSchedule:       "@every 10m",
		SuspensionStatusTTL: time.Minute,

		RejectPenalty:        20,
		DismissPenalty:       10,
		CommentDeletePenalty: 15,
		SuspensionPenalty:    25,
		RestorationBonus:     50,
	}
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "resonate_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		ModeratorEmails:  getEnv("MODERATOR_EMAILS", ""),
		ModeratorUserIDs: getEnv("MODERATOR_USER_IDS", ""),
		ModeratorToken:   getEnv("MODERATOR_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		Moderation: loadModeration(),
	}
}

func loadModeration() ModerationConfig {
	d := DefaultModeration()
	return ModerationConfig{
		FlagForReviewThreshold:    parseInt(getEnv("MOD_FLAG_FOR_REVIEW", ""), d.FlagForReviewThreshold),
		AutoDeleteThreshold:       parseInt(getEnv("MOD_AUTO_DELETE", ""), d.AutoDeleteThreshold),
		DeleteAndTempBanThreshold: parseInt(getEnv("MOD_DELETE_AND_TEMP_BAN", ""), d.DeleteAndTempBanThreshold),
		UniqueReportersMin:        parseInt(getEnv("MOD_UNIQUE_REPORTERS_MIN", ""), d.UniqueReportersMin),
		AutoDeleteUniqueMin:       parseInt(getEnv("MOD_AUTO_DELETE_UNIQUE_MIN", ""), d.AutoDeleteUniqueMin),
		DeleteAndBanUniqueMin:     parseInt(getEnv("MOD_DELETE_AND_BAN_UNIQUE_MIN", ""), d.DeleteAndBanUniqueMin),

		TempBanDuration:     parseDuration(getEnv("MOD_TEMP_BAN_DURATION", ""), d.TempBanDuration),
		ShortSuspension:     parseDuration(getEnv("MOD_SHORT_SUSPENSION", ""), d.ShortSuspension),
		ExtendedSuspension:  parseDuration(getEnv("MOD_EXTENDED_SUSPENSION", ""), d.ExtendedSuspension),
		PermanentHorizon:    parseDuration(getEnv("MOD_PERMANENT_HORIZON", ""), d.PermanentHorizon),
		SweepSchedule:       getEnv("MOD_SWEEP_SCHEDULE", d.SweepSchedule),
		SuspensionStatusTTL: parseDuration(getEnv("MOD_STATUS_CACHE_TTL", ""), d.SuspensionStatusTTL),

		RejectPenalty:        parseInt(getEnv("MOD_REJECT_PENALTY", ""), d.RejectPenalty),
		DismissPenalty:       parseInt(getEnv("MOD_DISMISS_PENALTY", ""), d.DismissPenalty),
		CommentDeletePenalty: parseInt(getEnv("MOD_COMMENT_DELETE_PENALTY", ""), d.CommentDeletePenalty),
		SuspensionPenalty:    parseInt(getEnv("MOD_SUSPENSION_PENALTY", ""), d.SuspensionPenalty),
		RestorationBonus:     parseInt(getEnv("MOD_RESTORATION_BONUS", ""), d.RestorationBonus),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
