package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Device  DeviceConfig
	Catalog CatalogConfig
	Store   StoreConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StorageConfig selects where device snapshots are written.
type StorageConfig struct {
	Driver     string `envconfig:"STORAGE_DRIVER" default:"memory"`
	SQLitePath string `envconfig:"STORAGE_SQLITE_PATH" default:"rent-elegance.db"`
}

// DBConfig is only read when STORAGE_DRIVER=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Device-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Device-Token"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type DeviceConfig struct {
	TokenSecret   string `envconfig:"DEVICE_TOKEN_SECRET" required:"true"`
	TokenDuration string `envconfig:"DEVICE_TOKEN_DURATION" default:"8760h"`
	Cookie        CookieConfig
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// StoreConfig bounds the in-memory device stores. Zero values disable the bound.
type StoreConfig struct {
	IdleTTL       time.Duration `envconfig:"STORE_IDLE_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"STORE_SWEEP_INTERVAL" default:"1m"`
	MaxDevices    int           `envconfig:"STORE_MAX_DEVICES" default:"10000"`
}

// Empty paths fall back to the embedded seed catalog.
type CatalogConfig struct {
	ProductsPath   string `envconfig:"CATALOG_PRODUCTS_PATH" default:""`
	CategoriesPath string `envconfig:"CATALOG_CATEGORIES_PATH" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c StorageConfig) Validate() error {
	switch c.Driver {
	case StorageDriverMemory, StorageDriverSQLite, StorageDriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Driver)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Device: DeviceConfig{
			TokenSecret:   "test-device-secret",
			TokenDuration: "1h",
			Cookie: CookieConfig{
				SameSite: "Lax",
			},
		},
		Store: StoreConfig{
			IdleTTL:    30 * time.Minute,
			MaxDevices: 1000,
		},
	}
}
