package repository

import (
	"Contract-Service/internal/app/config"
	"Contract-Service/internal/app/dsn"
	"Contract-Service/internal/app/redis"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db          *gorm.DB
	redisClient *redis.Client
	Interval    *IntervalRepository
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	// Инициализируем базу данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Инициализируем Redis клиент
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize Redis client: %v", err)
		// Продолжаем без Redis, страницы не кешируются
		redisClient = nil
	}

	return New(db, redisClient), nil
}

// New собирает репозиторий над готовым соединением, redisClient может быть nil
func New(db *gorm.DB, redisClient *redis.Client) *Repository {
	return &Repository{
		db:          db,
		redisClient: redisClient,
		Interval:    NewIntervalRepository(db),
	}
}

// GetRedisClient возвращает Redis клиент или nil
func (r *Repository) GetRedisClient() *redis.Client {
	return r.redisClient
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := r.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("Error closing database: %v", err)
		}
	}
}
