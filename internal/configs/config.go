package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RabbitMQConfig хранит конфигурацию для RabbitMQ.
// Пустой URL отключает прием заявок с формы обратной связи.
type RabbitMQConfig struct {
	URL string
}

// DBconfig хранит конфигурацию для БД.
// Пустой URL означает, что каталог читается из файла.
type DBconfig struct {
	URL string
}

type CatalogConfig struct {
	FilePath string
}

// SelectionConfig ограничивает хранилище избранного и сравнения в памяти процесса.
type SelectionConfig struct {
	MaxVisitors int
	VisitorTTL  time.Duration
}

type HTTPConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	HTTP         HTTPConfig
	Database     DBconfig
	Catalog      CatalogConfig
	Selection    SelectionConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env необязателен: в контейнере переменные приходят из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using process environment.\n", envPath)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "catalog-service")

	cfg.HTTP.Port = getEnvAsString("PORT", "8090")
	if _, err := strconv.Atoi(cfg.HTTP.Port); err != nil {
		return nil, fmt.Errorf("PORT must be a number, got %q", cfg.HTTP.Port)
	}
	cfg.HTTP.CORSAllowedOrigins = splitList(getEnvAsString("CORS_ALLOWED_ORIGINS", "*"))

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Catalog.FilePath = getEnvAsString("CATALOG_FILE", "data/catalog.json")
	if cfg.Database.URL == "" && cfg.Catalog.FilePath == "" {
		return nil, fmt.Errorf("either DATABASE_URL or CATALOG_FILE environment variable is required")
	}

	cfg.Selection.MaxVisitors = getEnvAsInt("SELECTION_MAX_VISITORS", 10000)
	cfg.Selection.VisitorTTL = time.Duration(getEnvAsInt("SELECTION_VISITOR_TTL_HOURS", 168)) * time.Hour
	if cfg.Selection.MaxVisitors <= 0 || cfg.Selection.VisitorTTL <= 0 {
		return nil, fmt.Errorf("SELECTION_MAX_VISITORS and SELECTION_VISITOR_TTL_HOURS must be positive")
	}

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsString читает переменную окружения как строку или возвращает значение по умолчанию
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
