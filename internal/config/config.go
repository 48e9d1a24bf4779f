package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Провайдеры отправки уведомлений
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
	ProviderLog    = "log"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Notification NotificationConfig `toml:"notification"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int   `toml:"http_port"`
	ReadTimeout     int   `toml:"read_timeout"`
	WriteTimeout    int   `toml:"write_timeout"`
	IdleTimeout     int   `toml:"idle_timeout"`
	ShutdownTimeout int   `toml:"shutdown_timeout"`
	MaxBodyBytes    int64 `toml:"max_body_bytes"`
}

// DatabaseConfig настройки PostgreSQL
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки бронирования
type BookingConfig struct {
	// Timezone локация, в которой ISO-instant из формы превращается в календарную дату
	// и определяется "сегодня" для проверки прошедших дат
	Timezone string `toml:"timezone"`
}

// Location загружает локацию бронирования
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// NotificationConfig настройки уведомления оператора
type NotificationConfig struct {
	Provider      string `toml:"provider"`
	OperatorEmail string `toml:"operator_email"`
	From          string `toml:"from"`
	Subject       string `toml:"subject"`
	UpcomingOnly  bool   `toml:"upcoming_only"`
	Workers       int    `toml:"workers"`
	SendTimeout   int    `toml:"send_timeout"`

	SMTP   SMTPConfig   `toml:"smtp"`
	Resend ResendConfig `toml:"resend"`
}

// SMTPConfig настройки SMTP транспорта
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// ResendConfig настройки Resend API
type ResendConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig ограничение частоты отправки формы с одного IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// TrustedProxies адреса или CIDR прокси, которым доверяем X-Forwarded-For.
	// Пусто - клиент определяется только по RemoteAddr.
	TrustedProxies []string `toml:"trusted_proxies"`
}

// TrustedProxyPrefixes разбирает rate_limit.trusted_proxies (одиночный IP = префикс на весь адрес)
func (c RateLimitConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: rate_limit.trusted_proxies: invalid address %q", ErrInvalidConfig, raw)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// Load загружает .env (если есть), затем TOML-файл, применяет переменные окружения,
// значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.Notification.Provider = strings.ToLower(strings.TrimSpace(cfg.Notification.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			MaxBodyBytes:    1 << 20,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "appointments",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "appointment-service",
		},
		Booking: BookingConfig{
			Timezone: "UTC",
		},
		Notification: NotificationConfig{
			Provider:    ProviderLog,
			From:        "Appointment Booking <onboarding@resend.dev>",
			Subject:     "New Appointment Booking",
			Workers:     4,
			SendTimeout: 15,
			SMTP: SMTPConfig{
				Port: 587,
			},
			Resend: ResendConfig{
				BaseURL: "https://api.resend.com",
				Timeout: 10,
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
	}
}

// applyEnv переопределяет секреты и параметры подключения из окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DATABASE_HOST")
	setInt(&cfg.Database.Port, "DATABASE_PORT")
	setString(&cfg.Database.User, "DATABASE_USER")
	setString(&cfg.Database.Password, "DATABASE_PASSWORD")
	setString(&cfg.Database.DBName, "DATABASE_NAME")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
	setString(&cfg.Notification.Provider, "NOTIFICATION_PROVIDER")
	setString(&cfg.Notification.OperatorEmail, "OPERATOR_EMAIL")
	setString(&cfg.Notification.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.Notification.Resend.APIKey, "RESEND_API_KEY")
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port (got %d)", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	n := c.Notification
	if n.Workers <= 0 {
		return fmt.Errorf("%w: notification.workers must be positive", ErrInvalidConfig)
	}

	switch n.Provider {
	case ProviderLog:
	case ProviderSMTP:
		if n.SMTP.Host == "" {
			return fmt.Errorf("%w: notification.smtp.host is required for smtp provider", ErrInvalidConfig)
		}
	case ProviderResend:
		if n.Resend.APIKey == "" {
			return fmt.Errorf("%w: RESEND_API_KEY is required for resend provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notification.provider %q", ErrInvalidConfig, n.Provider)
	}

	if n.Provider != ProviderLog {
		if _, err := mail.ParseAddress(n.OperatorEmail); err != nil {
			return fmt.Errorf("%w: notification.operator_email: %v", ErrInvalidConfig, err)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	if _, err := c.RateLimit.TrustedProxyPrefixes(); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
