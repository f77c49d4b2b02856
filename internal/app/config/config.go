package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"Contract-Service/internal/app/contract"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	LogLevel string
	LogJSON  bool

	// PageCacheTTL - время жизни закешированных страниц, 0 отключает кеш
	PageCacheTTL time.Duration

	Contract ContractConfig

	// Redis Configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// ContractConfig - секция [Contract], таблица кодов ответа
type ContractConfig struct {
	OkCode                 int
	OkMessage              string
	ErrorCode              int
	ErrorMessage           string
	BadRequestCode         int
	BadRequestMessage      string
	PreconditionFailedCode int
	UnauthorizedCode       int
	NotFoundCode           int
	NotFoundMessage        string
	ExposeSuccess          bool
}

func NewConfig() (*Config, error) {
	// Загружаем .env файл
	_ = godotenv.Load()

	// Загружаем TOML конфигурацию
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", configName, err)
		}
		log.Warnf("config file %s not found, using defaults", configName)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Redis конфигурация из .env
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		} else {
			log.Warnf("invalid REDIS_DB %q, using 0", dbStr)
		}
	}
	cfg.RedisDB = redisDB

	log.Info("config parsed")

	return cfg, nil
}

// Policy собирает таблицу кодов для конвертов ответа
func (c *Config) Policy() contract.Policy {
	return contract.Policy{
		OkCode:                 c.Contract.OkCode,
		OkMessage:              c.Contract.OkMessage,
		ErrorCode:              c.Contract.ErrorCode,
		ErrorMessage:           c.Contract.ErrorMessage,
		BadRequestCode:         c.Contract.BadRequestCode,
		BadRequestMessage:      c.Contract.BadRequestMessage,
		PreconditionFailedCode: c.Contract.PreconditionFailedCode,
		UnauthorizedCode:       c.Contract.UnauthorizedCode,
		NotFoundCode:           c.Contract.NotFoundCode,
		NotFoundMessage:        c.Contract.NotFoundMessage,
		ExposeSuccess:          c.Contract.ExposeSuccess,
	}
}

// Addr - адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogJSON", false)
	v.SetDefault("PageCacheTTL", "1m")

	p := contract.DefaultPolicy()
	v.SetDefault("Contract.OkCode", p.OkCode)
	v.SetDefault("Contract.OkMessage", p.OkMessage)
	v.SetDefault("Contract.ErrorCode", p.ErrorCode)
	v.SetDefault("Contract.ErrorMessage", p.ErrorMessage)
	v.SetDefault("Contract.BadRequestCode", p.BadRequestCode)
	v.SetDefault("Contract.BadRequestMessage", p.BadRequestMessage)
	v.SetDefault("Contract.PreconditionFailedCode", p.PreconditionFailedCode)
	v.SetDefault("Contract.UnauthorizedCode", p.UnauthorizedCode)
	v.SetDefault("Contract.NotFoundCode", p.NotFoundCode)
	v.SetDefault("Contract.NotFoundMessage", p.NotFoundMessage)
	v.SetDefault("Contract.ExposeSuccess", p.ExposeSuccess)
}

// getEnv вспомогательная функция для получения environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
