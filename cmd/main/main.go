package main

import (
	"Contract-Service/internal/app/config"
	"Contract-Service/internal/app/repository"
	"Contract-Service/internal/pkg"

	_ "Contract-Service/docs" // Важно: добавляем импорт docs

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Contract Service API
// @version 1.0
// @description Paged interval catalogue with uniform query and response envelopes

// @contact.name API Support
// @contact.url http://localhost:8080

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @tag.name Intervals
// @tag.description Paged interval catalogue
func main() {
	router := gin.New()

	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	// Инициализируем репозиторий
	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	// Создаем приложение с конфигурацией
	application := pkg.NewApp(conf, router, repo)

	// Запускаем приложение
	application.RunApp()
}
