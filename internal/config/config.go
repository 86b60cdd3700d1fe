package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Storage  StorageConfig  `toml:"storage"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig настройки персистентного хранилища коллекций.
// Driver выбирает реализацию key-value store: file, postgres или redis.
type StorageConfig struct {
	Driver   string         `toml:"driver"`
	File     FileStorage    `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

// FileStorage настройки файлового хранилища
type FileStorage struct {
	Dir string `toml:"dir"`
}

// PostgresConfig настройки подключения к PostgreSQL
type PostgresConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки доступа сотрудников.
// Сверка токена выполняется точным сравнением - это осознанно простая
// заглушка вместо полноценной аутентификации.
type AuthConfig struct {
	EmployeeToken string `toml:"employee_token"`
}

// BookingConfig настройки движка бронирования
type BookingConfig struct {
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	HorizonDays         int `toml:"horizon_days"`
}

// ScheduleConfig недельное расписание в TOML.
// Дни, не указанные в конфиге, берутся из расписания по умолчанию.
type ScheduleConfig struct {
	Days []ScheduleDay `toml:"days"`
}

// ScheduleDay один день недельного расписания
type ScheduleDay struct {
	DayOfWeek      int    `toml:"day_of_week"`
	IsOpen         bool   `toml:"is_open"`
	MorningStart   string `toml:"morning_start"`
	MorningEnd     string `toml:"morning_end"`
	AfternoonStart string `toml:"afternoon_start"`
	AfternoonEnd   string `toml:"afternoon_end"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Driver: "file",
			File:   FileStorage{Dir: "./data"},
		},
		Metrics: MetricsConfig{
			ServiceName: "appointment-service",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			SlotDurationMinutes: domain.SlotDurationMinutes,
			HorizonDays:         domain.DefaultHorizonDays,
		},
	}
}

// validate проверяет значения конфигурации
func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "file", "postgres", "redis":
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon_days must be positive", ErrInvalidConfig)
	}

	for _, day := range c.Schedule.Days {
		if day.DayOfWeek < domain.MinDayOfWeek || day.DayOfWeek > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: schedule day_of_week %d out of range", ErrInvalidConfig, day.DayOfWeek)
		}
	}

	return nil
}

// WeeklySchedule собирает недельное расписание: дни из конфига
// накладываются поверх расписания по умолчанию.
func (c *Config) WeeklySchedule() (domain.WeeklySchedule, error) {
	schedule := domain.DefaultWeeklySchedule()

	for _, day := range c.Schedule.Days {
		entry := domain.OpeningHours{
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
		}

		var err error
		if entry.MorningStart, err = optionalTime(day.MorningStart); err != nil {
			return schedule, fmt.Errorf("%w: day %d morning_start: %v", ErrInvalidConfig, day.DayOfWeek, err)
		}
		if entry.MorningEnd, err = optionalTime(day.MorningEnd); err != nil {
			return schedule, fmt.Errorf("%w: day %d morning_end: %v", ErrInvalidConfig, day.DayOfWeek, err)
		}
		if entry.AfternoonStart, err = optionalTime(day.AfternoonStart); err != nil {
			return schedule, fmt.Errorf("%w: day %d afternoon_start: %v", ErrInvalidConfig, day.DayOfWeek, err)
		}
		if entry.AfternoonEnd, err = optionalTime(day.AfternoonEnd); err != nil {
			return schedule, fmt.Errorf("%w: day %d afternoon_end: %v", ErrInvalidConfig, day.DayOfWeek, err)
		}

		schedule[day.DayOfWeek] = entry
	}

	if err := schedule.Validate(); err != nil {
		return schedule, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return schedule, nil
}

// optionalTime парсит опциональное время из конфига
func optionalTime(s string) (*types.TimeString, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
