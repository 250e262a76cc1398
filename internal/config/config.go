package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Google   GoogleConfig   `toml:"google"`
	Calendar CalendarConfig `toml:"calendar"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort           int      `toml:"http_port"`
	ReadTimeout        int      `toml:"read_timeout"`
	WriteTimeout       int      `toml:"write_timeout"`
	IdleTimeout        int      `toml:"idle_timeout"`
	ShutdownTimeout    int      `toml:"shutdown_timeout"`
	LoadRatePerMinute  int      `toml:"load_rate_per_minute"`  // лимит загрузок календаря с одного IP
	LoadBurst          int      `toml:"load_burst"`
	LoadLimiterIdleTTL int      `toml:"load_limiter_idle_ttl"` // секунды, после которых забываем IP
	TrustedProxies     []string `toml:"trusted_proxies"`       // IP/CIDR, которым доверяем X-Forwarded-For
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GoogleConfig настройки доступа к Google Sheets
type GoogleConfig struct {
	CredentialsPath string `toml:"credentials_path"`
	Timeout         int    `toml:"timeout"` // секунды
}

// CalendarConfig значения по умолчанию для загрузки календаря
type CalendarConfig struct {
	SpreadsheetID string `toml:"spreadsheet_id"`
	SheetName     string `toml:"sheet_name"`
	DateStartCell string `toml:"date_start_cell"` // например, "C7"; пусто - автоопределение
	DateStart     string `toml:"date_start"`      // например, "24.11.2025"
	Year          int    `toml:"year"`            // год для автоопределения, 0 - текущий
	LoadOnStartup bool   `toml:"load_on_startup"`
}

// DatabaseConfig настройки PostgreSQL для журнала загрузок
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки кэша таблиц
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// AuthConfig настройки JWT авторизации
type AuthConfig struct {
	Enabled                  bool   `toml:"enabled"`
	Username                 string `toml:"username"`
	Password                 string `toml:"password"`
	AccessTokenSecret        string `toml:"access_token_secret"`
	RefreshTokenSecret       string `toml:"refresh_token_secret"`
	AccessTokenExpireMinutes int    `toml:"access_token_expire_minutes"`
	RefreshTokenExpireDays   int    `toml:"refresh_token_expire_days"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из переменных окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Google.CredentialsPath == "" {
		return fmt.Errorf("config: google.credentials_path is required (or GOOGLE_CREDENTIALS_PATH)")
	}
	if c.Auth.Enabled {
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return fmt.Errorf("config: auth.username and auth.password must be set when auth is enabled")
		}
		if c.Auth.AccessTokenSecret == "" || c.Auth.RefreshTokenSecret == "" {
			return fmt.Errorf("config: auth token secrets must be set when auth is enabled")
		}
	}
	if c.Calendar.LoadOnStartup && c.Calendar.SpreadsheetID == "" {
		return fmt.Errorf("config: calendar.spreadsheet_id is required for load_on_startup")
	}
	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 60)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	setDefault(&c.Server.LoadRatePerMinute, 30)
	setDefault(&c.Server.LoadBurst, 5)
	setDefault(&c.Server.LoadLimiterIdleTTL, 600)

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "calendar-service")

	setDefault(&c.Google.Timeout, 30)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 5)
	setDefault(&c.Database.MaxIdleConns, 2)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Redis.Addr, "localhost:6379")
	setDefault(&c.Redis.TTL, 300)

	setDefault(&c.Auth.AccessTokenExpireMinutes, 15)
	setDefault(&c.Auth.RefreshTokenExpireDays, 7)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// applyEnv переопределяет параметры переменными окружения (ключи совпадают с .env прежней версии сервиса)
func applyEnv(cfg *Config) error {
	overrideString(&cfg.Calendar.SpreadsheetID, "SPREADSHEET_ID")
	overrideString(&cfg.Calendar.SheetName, "SHEET_NAME")
	overrideString(&cfg.Calendar.DateStartCell, "DATE_START_CELL")
	overrideString(&cfg.Calendar.DateStart, "DATE_START")
	overrideString(&cfg.Google.CredentialsPath, "GOOGLE_CREDENTIALS_PATH")
	overrideString(&cfg.Auth.Username, "AUTH_USERNAME")
	overrideString(&cfg.Auth.Password, "AUTH_PASSWORD")
	overrideString(&cfg.Auth.AccessTokenSecret, "ACCESS_TOKEN_SECRET")
	overrideString(&cfg.Auth.RefreshTokenSecret, "REFRESH_TOKEN_SECRET")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")

	if err := overrideInt(&cfg.Auth.AccessTokenExpireMinutes, "ACCESS_TOKEN_EXPIRE_MINUTES"); err != nil {
		return err
	}
	return overrideInt(&cfg.Auth.RefreshTokenExpireDays, "REFRESH_TOKEN_EXPIRE_DAYS")
}

func overrideString(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*field = v
	}
}

func overrideInt(field *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	*field = n
	return nil
}
