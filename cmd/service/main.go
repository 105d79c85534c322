package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"playlist-service/internal/config"
	"playlist-service/internal/playlist"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logger = logger.With("service", "playlist-service")

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}

	app := &cli.Command{
		Name:    "playlist-service",
		Usage:   "Playlist management service for the media platform",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run migrations and start the HTTP server",
				Flags: []cli.Flag{configFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, cmd.String("config"), logger)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations and exit",
				Flags: []cli.Flag{configFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return migrate(ctx, cmd.String("config"), logger)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func connect(ctx context.Context, path string, logger *log.Logger) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	logger.Info("connected to database")
	return cfg, pool, nil
}

func migrate(ctx context.Context, path string, logger *log.Logger) error {
	_, pool, err := connect(ctx, path, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := playlist.AutoMigrate(ctx, pool); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func serve(ctx context.Context, path string, logger *log.Logger) error {
	cfg, pool, err := connect(ctx, path, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := playlist.AutoMigrate(ctx, pool); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return err
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	events := playlist.NewEvents(rdb, logger)
	svc := playlist.NewService(
		playlist.NewPGPlaylistStore(pool, logger),
		playlist.NewPGVideoStore(pool),
		events,
		logger,
	)
	server := playlist.NewServer(svc, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
