package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ysalhi/tamwil-backend/internal/api"
	"github.com/ysalhi/tamwil-backend/internal/auth"
	"github.com/ysalhi/tamwil-backend/internal/config"
	"github.com/ysalhi/tamwil-backend/internal/db"
	"github.com/ysalhi/tamwil-backend/internal/logger"
	"github.com/ysalhi/tamwil-backend/internal/metrics"
	"github.com/ysalhi/tamwil-backend/internal/repository/postgres"
	"github.com/ysalhi/tamwil-backend/internal/services"
	"github.com/ysalhi/tamwil-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, 15*time.Minute, 7*24*time.Hour)

	deps := services.Build(services.Repos{
		Users:           repos.Users,
		Wallets:         repos.Wallets,
		Transactions:    repos.Transactions,
		Projects:        repos.Projects,
		Investments:     repos.Investments,
		Withdrawals:     repos.Withdrawals,
		Services:        repos.Services,
		ServiceRequests: repos.ServiceRequests,
		Reports:         repos.Reports,
		Settings:        repos.Settings,
		AuditLogs:       repos.AuditLogs,
	}, wp, tm)
	deps.Investments.RecordDirectTxn = cfg.RecordDirectInvestmentTxn

	r := api.NewRouter(api.Deps{
		Cfg:         cfg,
		TM:          tm,
		Users:       deps.Users,
		Wallets:     deps.Wallets,
		Investments: deps.Investments,
		Withdrawals: deps.Withdrawals,
		Projects:    deps.Projects,
		Admin:       deps.Admin,
		Marketplace: deps.Marketplace,
		Reports:     deps.Reports,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
