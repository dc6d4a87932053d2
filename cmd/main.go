package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce_backend/internal/handlers"
	"ecommerce_backend/internal/logger"
	"ecommerce_backend/internal/media"
	"ecommerce_backend/internal/repository"
	"ecommerce_backend/internal/server"
	"ecommerce_backend/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultPort       = "5000"
	defaultDBPath     = "shop.db"
	defaultUploadsDir = "uploads"
)

func main() {
	loadConfig()

	log := logger.Get(viper.GetString("log.level"))

	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	uploadsDir := viper.GetString("uploads.dir")
	repos := repository.NewRepository(db)
	mediaStore := media.NewStore(uploadsDir, log)
	services := service.NewService(repos, mediaStore, viper.GetString("auth.signing_key"))
	apiHandler := handlers.NewHandler(services, mediaStore, uploadsDir, log)

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, log)
}

// loadConfig reads configs/config.yml; missing file or keys fall back to
// defaults so the server runs out of the box.
func loadConfig() {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("uploads.dir", defaultUploadsDir)
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("auth.signing_key", "dev-signing-key")
	_ = viper.ReadInConfig()
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite store", "path", dbPath)
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting http server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks on termination signals and drains in-flight
// requests before exit.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
