package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Mail      MailConfig
	Throttle  ThrottleConfig
	Redis     RedisConfig
	Retention RetentionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Per-IP token bucket in front of the public email routes
	PublicRatePerMinute int `envconfig:"PUBLIC_RATE_PER_MINUTE" default:"30"`
	PublicBurst         int `envconfig:"PUBLIC_BURST" default:"10"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// Secret mixed into recipient fingerprints so log lines can be correlated without exposing addresses
	FingerprintKey string `envconfig:"LOG_FINGERPRINT_KEY" default:""`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

type MailConfig struct {
	// "smtp" delivers through Host/Port, "log" only writes the message to the logger
	Driver      string `envconfig:"MAIL_DRIVER" required:"true"`
	Host        string `envconfig:"MAIL_HOST" default:"localhost"`
	Port        int    `envconfig:"MAIL_PORT" default:"1025"`
	Username    string `envconfig:"MAIL_USERNAME" default:""`
	Password    string `envconfig:"MAIL_PASSWORD" default:""`
	From        string `envconfig:"MAIL_FROM" default:"no-reply@talent.local"`
	AppBaseURL  string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
	InsecureTLS bool   `envconfig:"MAIL_INSECURE_TLS" default:"false"`
}

type ThrottleConfig struct {
	// "memory" keeps counters in process, "redis" shares them across instances
	Backend       string        `envconfig:"THROTTLE_BACKEND" default:"memory"`
	Window        time.Duration `envconfig:"THROTTLE_WINDOW" default:"10m"`
	Limit         int64         `envconfig:"THROTTLE_LIMIT" default:"5"`
	PruneInterval time.Duration `envconfig:"THROTTLE_PRUNE_INTERVAL" default:"1m"`
	KeyPrefix     string        `envconfig:"THROTTLE_KEY_PREFIX" default:"email-throttle"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RetentionConfig struct {
	Enabled       bool          `envconfig:"LEDGER_PRUNE_ENABLED" default:"true"`
	MaxAge        time.Duration `envconfig:"LEDGER_RETENTION" default:"720h"`
	PruneInterval time.Duration `envconfig:"LEDGER_PRUNE_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:                "8889", // Test port
			PublicRatePerMinute: 600,
			PublicBurst:         100,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
			FingerprintKey: "test-fingerprint-key",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Mail: MailConfig{
			Driver:     "log",
			From:       "no-reply@talent.test",
			AppBaseURL: "http://localhost:3000",
		},
		Throttle: ThrottleConfig{
			Backend:       "memory",
			Window:        10 * time.Minute,
			Limit:         5,
			PruneInterval: time.Minute,
			KeyPrefix:     "email-throttle-test",
		},
		Retention: RetentionConfig{
			Enabled:       false,
			MaxAge:        720 * time.Hour,
			PruneInterval: time.Hour,
		},
	}
}
