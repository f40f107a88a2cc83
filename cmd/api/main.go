package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	_ "concerts/docs"
	"concerts/pkg/api"
	"concerts/pkg/clientid"
	"concerts/pkg/concert"
	"concerts/pkg/concert/memory"
	pgconcert "concerts/pkg/concert/postgres"
	redisconcert "concerts/pkg/concert/redis"
	"concerts/pkg/config"
	"concerts/pkg/logger"
	"concerts/pkg/metrics"
	"concerts/pkg/otel"
	pgparolee "concerts/pkg/parolee/postgres"
	pgperformer "concerts/pkg/performer/postgres"
)

// @title Concerts API
// @version 1.0
// @description In-memory concert store with client cookie issuance, plus performer and parolee records
// @host localhost:8443
// @BasePath /
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath, addr string
	cmd := &cobra.Command{
		Use:          "api",
		Short:        "Serve the concerts HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := logger.New(os.Stdout, level, cfg.OTel.ServiceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.OTel.ServiceName,
		Host:        cfg.OTel.Host,
		Probability: cfg.OTel.Probability,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer func() {
		if err := flushTracing(cfg.ShutdownTimeout, shutdownTracing); err != nil {
			log.Error(context.Background(), "shutdown tracing", "error", err)
		}
	}()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error(ctx, "db connect", "error", err)
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error(ctx, "db ping", "error", err)
			return err
		}
	}

	concerts, closeStore, err := openConcerts(ctx, cfg, db)
	if err != nil {
		log.Error(ctx, "open concert store", "store", cfg.Store, "error", err)
		return err
	}
	defer closeStore()

	deps := api.Deps{
		Concerts:    concerts,
		Log:         log,
		Tracer:      tp.Tracer(cfg.OTel.ServiceName),
		Metrics:     metrics.New(),
		Cookies:     clientid.NewIssuer(cfg.CookieName),
		MaxPageSize: cfg.MaxPageSize,
	}
	if db != nil {
		performers := pgperformer.New(db)
		if err := performers.CreateSchema(ctx); err != nil {
			log.Error(ctx, "create table", "error", err)
			return err
		}
		parolees := pgparolee.New(db)
		if err := parolees.CreateSchema(ctx); err != nil {
			log.Error(ctx, "create table", "error", err)
			return err
		}
		deps.Performers = performers
		deps.Parolees = parolees
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.New(deps).Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.Addr, "store", cfg.Store, "tls", cfg.TLSCert != "")
		if cfg.TLSCert != "" {
			serverErrors <- srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		serverErrors <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		log.Error(context.Background(), "server closed", "error", err)
		return err
	case <-ctx.Done():
		log.Info(context.Background(), "shutdown started")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Info(context.Background(), "shutdown complete")
		return nil
	}
}

// flushTracing runs the tracer shutdown, giving up after timeout.
func flushTracing(timeout time.Duration, shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return shutdown(ctx)
}

// openConcerts builds the configured concert store and its cleanup.
func openConcerts(ctx context.Context, cfg config.Config, db *sql.DB) (concert.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return redisconcert.New(rdb, cfg.RedisPrefix), func() { rdb.Close() }, nil
	case config.StorePostgres:
		if db == nil {
			return nil, nil, errors.New("postgres store without database connection")
		}
		repo := pgconcert.New(db)
		if err := repo.CreateSchema(ctx); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	default:
		return memory.New(), func() {}, nil
	}
}
