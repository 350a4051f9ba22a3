package config

import (
	"fmt"
	"time"

	"github.com/stpnv0/RoomBooker/internal/backend"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	App       AppConfig       `yaml:"app"       validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Backend   BackendConfig   `yaml:"backend"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

type AppConfig struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"local" validate:"required,oneof=local dev prod test"`
}

// LogLevel converts the configured level into a wbf logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"                       validate:"required,oneof=file memory"`
	Dir    string `yaml:"dir"    env:"STORAGE_DIR"    env-default:".roombooker"                validate:"required_if=Driver file"`
	Key    string `yaml:"key"    env:"STORAGE_KEY"    env-default:"hotel_booking_app_state_v1" validate:"required"`
}

type BackendConfig struct {
	FetchRoomsLatency    time.Duration `yaml:"fetch_rooms_latency"    env:"BACKEND_FETCH_ROOMS_LATENCY"    env-default:"400ms" validate:"gte=0"`
	FetchBookingsLatency time.Duration `yaml:"fetch_bookings_latency" env:"BACKEND_FETCH_BOOKINGS_LATENCY" env-default:"250ms" validate:"gte=0"`
	CreateLatency        time.Duration `yaml:"create_latency"         env:"BACKEND_CREATE_LATENCY"         env-default:"400ms" validate:"gte=0"`
	CancelLatency        time.Duration `yaml:"cancel_latency"         env:"BACKEND_CANCEL_LATENCY"         env-default:"250ms" validate:"gte=0"`
	FailureRate          float64       `yaml:"failure_rate"           env:"BACKEND_FAILURE_RATE"           env-default:"0"     validate:"gte=0,lte=1"`
}

func (c BackendConfig) Latency() backend.Latency {
	return backend.Latency{
		FetchRooms:    c.FetchRoomsLatency,
		FetchBookings: c.FetchBookingsLatency,
		Create:        c.CreateLatency,
		Cancel:        c.CancelLatency,
	}
}

type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SCHEDULER_ENABLED"  env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
