package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catacuti-backend-go/internal/config"
	"catacuti-backend-go/internal/db"
	httpapi "catacuti-backend-go/internal/http"
	"catacuti-backend-go/internal/migrations"
	"catacuti-backend-go/internal/platform/logger"
	"catacuti-backend-go/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	appLog, err := logger.New(logger.Options{
		Mode:          cfg.LogMode,
		Dir:           cfg.LogDir,
		RetentionDays: cfg.LogRetentionDays,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("open database", "driver", db.Driver(cfg.DatabaseURL), "error", err)
	}
	defer database.Close()
	if err := migrations.Apply(ctx, database); err != nil {
		appLog.Fatal("migrations", "error", err)
	}

	svc := services.New(database, services.DefaultArgon2Hasher(), appLog, cfg.Location())
	if err := svc.EnsureSeedData(ctx); err != nil {
		appLog.Fatal("seed data", "error", err)
	}

	server := httpapi.NewServer(svc, cfg, appLog)
	addr := ":" + cfg.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("listening", "addr", addr, "driver", database.DriverName(), "admin_auth", cfg.AdminAuthRequired)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
	appLog.Info("shutdown complete")
}
