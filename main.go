package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peakperf/peakperf-backend/api"
	"github.com/peakperf/peakperf-backend/repositories"
	"github.com/peakperf/peakperf-backend/usecases"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func pgConfigFromEnv() utils.PGConfig {
	return utils.PGConfig{
		Hostname:         utils.GetStringEnv("PG_HOSTNAME", "localhost"),
		Port:             utils.GetStringEnv("PG_PORT", "5432"),
		User:             utils.GetRequiredStringEnv("PG_USER"),
		Password:         utils.GetRequiredStringEnv("PG_PASSWORD"),
		Database:         utils.GetStringEnv("PG_DATABASE", "peakperf"),
		ConnectionString: utils.GetStringEnv("PG_CONNECTION_STRING", ""),
	}
}

func runServer(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	port := utils.GetStringEnv("PORT", "8080")
	corsAllowLocalhost := utils.GetBoolEnv("CORS_ALLOW_LOCALHOST",
		utils.GetStringEnv("ENV", "development") == "development")

	poolConfig, err := pgxpool.ParseConfig(pgConfigFromEnv().GetConnectionString())
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	poolConfig.MaxConns = int32(utils.GetIntEnv("PG_MAX_POOL_CONNECTIONS", 20))

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("unable to create connection pool: %w", err)
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	repository := repositories.NewPerfDbRepository()
	uc := usecases.NewUsecases(executorGetter, repository)

	router := api.InitRouter(uc, logger, corsAllowLocalhost)
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.InfoContext(ctx, "starting server", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, fmt.Sprintf("server error: %v", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run database migrations")
	shouldRunServer := flag.Bool("server", false, "run the server")
	flag.Parse()

	logger := utils.NewLogger(utils.GetStringEnv("LOGGING_FORMAT", "text"))
	ctx, stop := signal.NotifyContext(
		utils.StoreLoggerInContext(context.Background(), logger),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(pgConfigFromEnv(), logger); err != nil {
			logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
			os.Exit(1)
		}
	}

	if *shouldRunServer {
		if err := runServer(ctx); err != nil {
			logger.ErrorContext(ctx, fmt.Sprintf("error running server: %v", err))
			os.Exit(1)
		}
	}
}
