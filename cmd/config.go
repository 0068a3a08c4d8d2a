package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"purchasing/internal/jobs"
	"purchasing/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`

	KafkaHost              string `mapstructure:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `mapstructure:"KAFKA_ORDER_CHANGED_TOPIC"`

	OutboxRelaySchedule  string `mapstructure:"OUTBOX_RELAY_SCHEDULE"`
	OutboxRelayBatchSize int    `mapstructure:"OUTBOX_RELAY_BATCH_SIZE"`
}

var defaults = map[string]any{
	"APP_ENV":                   "production",
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "",
	"DB_PORT":                   "5432",
	"DB_USER":                   "",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "",
	"DB_SSLMODE":                "disable",
	"AUTH_JWT_SECRET":           "",
	"KAFKA_HOST":                "",
	"KAFKA_ORDER_CHANGED_TOPIC": "order.changed",
	"OUTBOX_RELAY_SCHEDULE":     jobs.DefaultOutboxRelaySchedule,
	"OUTBOX_RELAY_BATCH_SIZE":   100,
}

// LoadConfig reads envFile into the process environment when it exists and
// then takes every key from the environment, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var validationErrs []error
	for name, value := range map[string]string{
		"DB_HOST":         c.DBHost,
		"DB_USER":         c.DBUser,
		"DB_NAME":         c.DBName,
		"AUTH_JWT_SECRET": c.AuthJWTSecret,
	} {
		if strings.TrimSpace(value) == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError(name))
		}
	}
	if c.OutboxRelayBatchSize <= 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidError("OUTBOX_RELAY_BATCH_SIZE"))
	}
	return errors.Join(validationErrs...)
}

// DSN is the PostgreSQL connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether the outbox relay should run.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}
