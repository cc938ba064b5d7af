package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/nfdog/internal/api"
	"github.com/youruser/nfdog/internal/app"
	"github.com/youruser/nfdog/internal/config"
	"github.com/youruser/nfdog/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		if err := logging.InitFile(cfg.LogFile, level); err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logging.Close()
	} else {
		logging.SetLevel(level)
	}

	composer, err := app.NewComposer(cfg)
	if err != nil {
		log.Fatalf("Failed to build card composer: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.LoggerWithWriter(logging.Writer()), gin.Recovery())
	api.RegisterRoutes(r, api.NewHandler(composer))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("starting server on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logging.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown: %v", err)
		return
	}
	logging.Info("Server gracefully stopped")
}
