package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
)

const (
	PositionBackendMemory = "memory"
	PositionBackendRedis  = "redis"

	defaultHTTPPort        = "8080"
	defaultUnitPrice       = 12000
	defaultPositionTTL     = time.Hour
	defaultNotifyQueueSize = 256
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// UnitPrice is the price of one bottle in UZS.
	UnitPrice kernel.Money

	PositionBackend string
	RedisAddr       string
	PositionTTL     time.Duration

	// Telegram notifications are disabled when the token is empty.
	TelegramBotToken string
	TelegramChatID   int64

	// AMQP notifications are disabled when the URL is empty.
	AMQPURL      string
	AMQPExchange string

	NotifyQueueSize int
}

// ConfigFromEnv reads the configuration through getenv, applying defaults for optional keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:         withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:           getenv("DB_HOST"),
		DBPort:           withDefault(getenv("DB_PORT"), "5432"),
		DBUser:           getenv("DB_USER"),
		DBPassword:       getenv("DB_PASSWORD"),
		DBName:           getenv("DB_NAME"),
		DBSslMode:        withDefault(getenv("DB_SSLMODE"), "disable"),
		PositionBackend:  withDefault(getenv("POSITION_BACKEND"), PositionBackendMemory),
		RedisAddr:        getenv("REDIS_ADDR"),
		TelegramBotToken: getenv("TELEGRAM_BOT_TOKEN"),
		AMQPURL:          getenv("AMQP_URL"),
		AMQPExchange:     getenv("AMQP_EXCHANGE"),
	}

	var errs []error

	config.UnitPrice = kernel.MoneyFromInt(defaultUnitPrice)
	if raw := getenv("UNIT_PRICE"); raw != "" {
		price, err := kernel.MoneyFromString(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("UNIT_PRICE: %w", err))
		case !price.IsPositive():
			errs = append(errs, fmt.Errorf("UNIT_PRICE: must be positive, got %s", raw))
		default:
			config.UnitPrice = price
		}
	}

	config.PositionTTL = defaultPositionTTL
	if raw := getenv("POSITION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			errs = append(errs, fmt.Errorf("POSITION_TTL: invalid duration %q", raw))
		} else {
			config.PositionTTL = ttl
		}
	}

	if raw := getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err))
		}
		config.TelegramChatID = chatID
	}

	config.NotifyQueueSize = defaultNotifyQueueSize
	if raw := getenv("NOTIFY_QUEUE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			errs = append(errs, fmt.Errorf("NOTIFY_QUEUE_SIZE: invalid size %q", raw))
		} else {
			config.NotifyQueueSize = size
		}
	}

	errs = append(errs, config.validate())
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	var errs []error

	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		errs = append(errs, errors.New("DB_HOST, DB_USER and DB_NAME are required"))
	}

	switch c.PositionBackend {
	case PositionBackendMemory:
	case PositionBackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis position backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("POSITION_BACKEND: unknown backend %q", c.PositionBackend))
	}

	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		errs = append(errs, errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set"))
	}

	return errors.Join(errs...)
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
