package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Redis          RedisConfig          `toml:"redis"`
	ServiceCatalog ServiceCatalogConfig `toml:"servicecatalog"`
	Booking        BookingConfig        `toml:"booking"`
	Pricing        PricingConfig        `toml:"pricing"`
	Holidays       HolidaysConfig       `toml:"holidays"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RedisConfig кеш ценовых таблиц; пустой URL отключает кеш
type RedisConfig struct {
	URL      string `toml:"url"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

// ServiceCatalogConfig клиент каталога дополнительных услуг; пустой URL отключает интеграцию
type ServiceCatalogConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig параметры проверки конфликтов
type BookingConfig struct {
	Timezone       string `toml:"timezone"`
	HorizonDays    int    `toml:"horizon_days"`
	MaxOccurrences int    `toml:"max_occurrences"`
}

// Horizon граница развертки существующих повторяющихся бронирований
func (c BookingConfig) Horizon() time.Duration {
	return time.Duration(c.HorizonDays) * 24 * time.Hour
}

// Location часовой пояс объектов
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// PricingConfig параметры расчета цены
type PricingConfig struct {
	DefaultBasePricePerHour float64 `toml:"default_base_price_per_hour"`
	VATRate                 float64 `toml:"vat_rate"`
	EveningSurchargePercent float64 `toml:"evening_surcharge_percent"`
	NightSurchargePercent   float64 `toml:"night_surcharge_percent"`
	WeekendSurchargePercent float64 `toml:"weekend_surcharge_percent"`
	HolidaySurchargePercent float64 `toml:"holiday_surcharge_percent"`
}

// HolidaysConfig дополнительные нерабочие дни (YYYY-MM-DD)
type HolidaysConfig struct {
	Extra []string `toml:"extra"`
}

// Dates разбирает дополнительные даты
func (c HolidaysConfig) Dates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(c.Extra))
	for _, s := range c.Extra {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// Load загружает конфигурацию из TOML файла
// Необязательный .env подгружается в окружение, DB_PASSWORD и REDIS_URL переопределяют файл
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "facility_booking"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Redis.CacheTTL == 0 {
		c.Redis.CacheTTL = 300
	}

	if c.ServiceCatalog.Timeout == 0 {
		c.ServiceCatalog.Timeout = 5
	}

	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Europe/Oslo"
	}
	if c.Booking.HorizonDays == 0 {
		c.Booking.HorizonDays = 365
	}
	if c.Booking.MaxOccurrences == 0 {
		c.Booking.MaxOccurrences = 1000
	}

	if c.Pricing.DefaultBasePricePerHour == 0 {
		c.Pricing.DefaultBasePricePerHour = 500
	}
	if c.Pricing.VATRate == 0 {
		c.Pricing.VATRate = 0.25
	}
}

// Validate проверяет значения после применения умолчаний
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Booking.HorizonDays < 1 {
		return fmt.Errorf("booking.horizon_days must be positive, got %d", c.Booking.HorizonDays)
	}
	if c.Booking.MaxOccurrences < 1 {
		return fmt.Errorf("booking.max_occurrences must be positive, got %d", c.Booking.MaxOccurrences)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("booking.timezone: %w", err)
	}
	if c.Pricing.DefaultBasePricePerHour < 0 {
		return errors.New("pricing.default_base_price_per_hour must not be negative")
	}
	if c.Pricing.VATRate < 0 || c.Pricing.VATRate > 1 {
		return fmt.Errorf("pricing.vat_rate must be in 0..1, got %g", c.Pricing.VATRate)
	}
	if _, err := c.Holidays.Dates(); err != nil {
		return err
	}
	return nil
}
