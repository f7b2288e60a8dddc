//go:build !lambda

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/server"
	"go.uber.org/zap"
)

func main() {
	logger.InitLogger(helpers.StageLocal)
	defer logger.Sync() //nolint:errcheck

	if os.Getenv("GIN_MODE") == "" && os.Getenv("STAGE") == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	server.InitializeHandlers()
	server.InitializeRoutes(router)

	port := helpers.GetEnvWithDefault("API_PORT", "8000")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	server.Shutdown()
	logger.Info("Server exiting")
}
