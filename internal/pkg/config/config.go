package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, provider endpoints)
// - default: Values common across all environments (timezone, timeouts, retention)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Scrape    ScrapeConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
	Provider  ProviderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Denver"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-25200"` // -7*60*60
}

// ScrapeConfig drives the periodic scrape cycle and retention sweep.
type ScrapeConfig struct {
	CronSpec      string        `envconfig:"SCRAPE_CRON" default:"*/15 * * * *"`
	SweepCronSpec string        `envconfig:"SWEEP_CRON" default:"30 3 * * *"`
	DaysAhead     int           `envconfig:"SCRAPE_DAYS_AHEAD" default:"7"`
	Timeout       time.Duration `envconfig:"SCRAPE_TIMEOUT" default:"30s"`
	RetentionDays int           `envconfig:"RETENTION_DAYS" default:"1"`
	MaxInFlight   int           `envconfig:"SCRAPE_MAX_IN_FLIGHT" default:"8"`
}

// QueryConfig holds the reference timezone the courses physically sit in.
// Slot visibility is decided against this wall clock, never the caller's.
type QueryConfig struct {
	TimeZone string `envconfig:"QUERY_TIMEZONE" default:"America/Denver"`
}

type RateLimitConfig struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"5"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	MaxKeys     int           `envconfig:"RATE_LIMIT_MAX_KEYS" default:"4096"`
}

type ProviderConfig struct {
	ForeUpEndpoint       string `envconfig:"FOREUP_ENDPOINT" default:"https://app.foreupsoftware.com/index.php/api/booking/times"`
	ChronogolfV1Endpoint string `envconfig:"CHRONOGOLF_V1_ENDPOINT" default:"https://www.chronogolf.com/marketplace/clubs/teetimes"`
	ChronogolfV2Endpoint string `envconfig:"CHRONOGOLF_V2_ENDPOINT" default:"https://www.chronogolf.com/marketplace/v2/teetimes"`
	MemberPortalEndpoint string `envconfig:"MEMBER_PORTAL_ENDPOINT" default:"https://eaglewood.cps.golf"`
	MemberPortalUser     string `envconfig:"MEMBER_PORTAL_USER" default:""`
	MemberPortalPassword string `envconfig:"MEMBER_PORTAL_PASSWORD" default:""`
	CoursesFile          string `envconfig:"COURSES_FILE" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Denver",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -25200,
		},
		Scrape: ScrapeConfig{
			CronSpec:      "*/15 * * * *",
			SweepCronSpec: "30 3 * * *",
			DaysAhead:     2,
			Timeout:       5 * time.Second,
			RetentionDays: 1,
			MaxInFlight:   4,
		},
		Query: QueryConfig{
			TimeZone: "America/Denver",
		},
		RateLimit: RateLimitConfig{
			MaxRequests: 100,
			Window:      time.Minute,
			MaxKeys:     128,
		},
		Provider: ProviderConfig{
			ForeUpEndpoint:       "https://foreup.test/api/booking/times",
			ChronogolfV1Endpoint: "https://chronogolf.test/marketplace/clubs/teetimes",
			ChronogolfV2Endpoint: "https://chronogolf.test/marketplace/v2/teetimes",
			MemberPortalEndpoint: "https://portal.test",
		},
	}
}
