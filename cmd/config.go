package cmd

import (
	"fmt"
	"slices"
	"strings"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	JWTSecret              string
	KafkaBrokers           []string
	KafkaOrderChangedTopic string
	OutboxRelaySchedule    string
	LogLevel               string
}

// LoadConfig reads the configuration through getenv, filling in defaults for
// optional settings.
func LoadConfig(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:               get("HTTP_PORT", "8080"),
		DBHost:                 get("DB_HOST", "localhost"),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 get("DB_USER", ""),
		DBPassword:             get("DB_PASSWORD", ""),
		DBName:                 get("DB_NAME", ""),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		JWTSecret:              get("JWT_SECRET", ""),
		KafkaBrokers:           splitList(get("KAFKA_BROKERS", "")),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OutboxRelaySchedule:    get("OUTBOX_RELAY_SCHEDULE", ""),
		LogLevel:               get("LOG_LEVEL", "info"),
	}

	var missing []string
	for key, value := range map[string]string{
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
