package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Booking     BookingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	InternalAPIKey string
}

// BookingConfig holds the ledger settings that can be overlaid from a TOML
// file (BOOKING_SETTINGS_FILE).
type BookingConfig struct {
	// GlobalTimeslot turns on store-wide slot sharing between all
	// time-enabled products.
	GlobalTimeslot bool          `toml:"global_timeslot"`
	MaxRetries     int           `toml:"global_task_max_retries"`
	RetryBackoff   time.Duration `toml:"global_task_backoff"`
	MaxBackoff     time.Duration `toml:"global_task_max_backoff"`
	DoneMarkerTTL  time.Duration `toml:"done_marker_ttl"`
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("APP_ENV", "development"),
		Server: ServerConfig{
			Port:            getString("SERVER_PORT", "8080"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "booking"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", ""),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getString("JWT_SECRET", ""),
			InternalAPIKey: getString("INTERNAL_API_KEY", ""),
		},
		Booking: BookingConfig{
			GlobalTimeslot: getBool("BOOKING_GLOBAL_TIMESLOT", false),
			MaxRetries:     getInt("BOOKING_GLOBAL_TASK_MAX_RETRIES", 5),
			RetryBackoff:   getDuration("BOOKING_GLOBAL_TASK_BACKOFF", 2*time.Second),
			MaxBackoff:     getDuration("BOOKING_GLOBAL_TASK_MAX_BACKOFF", 5*time.Minute),
			DoneMarkerTTL:  getDuration("BOOKING_DONE_MARKER_TTL", 24*time.Hour),
		},
	}
}

// LoadBookingSettings overlays the booking section with the values present
// in a TOML file. Keys absent from the file keep their current value.
func (c *Config) LoadBookingSettings(path string) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, &c.Booking); err != nil {
		return fmt.Errorf("decode booking settings %s: %w", path, err)
	}
	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
