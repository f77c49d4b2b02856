package pkg

import (
	"Contract-Service/internal/app/config"
	"Contract-Service/internal/app/handler"
	"Contract-Service/internal/app/middleware"
	"Contract-Service/internal/app/repository"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Repository *repository.Repository
}

func NewApp(c *config.Config, r *gin.Engine, repo *repository.Repository) *Application {
	ConfigureLogging(c)

	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	// без Redis страницы читаются напрямую из базы
	var cache handler.PageCache
	if client := repo.GetRedisClient(); client != nil {
		cache = client
	}
	handler.RegisterHandlers(r, repo.Interval, cache, c.Policy())

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Application{
		Config:     c,
		Router:     r,
		Repository: repo,
	}
}

// ConfigureLogging выставляет уровень и формат logrus из конфигурации
func ConfigureLogging(c *config.Config) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	srv := &http.Server{
		Addr:    a.Config.Addr(),
		Handler: a.Router,
	}

	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
	a.Repository.Close()

	logrus.Info("Server down")
}
