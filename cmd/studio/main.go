package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"shorts_studio/internal/agent"
	"shorts_studio/internal/config"
	"shorts_studio/internal/export"
	"shorts_studio/internal/generation"
	"shorts_studio/internal/publisher"
	"shorts_studio/internal/service"
	"shorts_studio/internal/storage/file"
	"shorts_studio/internal/storage/postgres"
	redisstore "shorts_studio/internal/storage/redis"
	"shorts_studio/internal/store"
)

const usage = `usage: studio [-config path] <command> [flags]

commands:
  generate   generate a new content package
  list       list stored items
  show       print an item
  select     choose the script variant to use
  edit       replace the body of a script
  thumbnail  generate a thumbnail for the selected script
  save       mark an item ready
  export     export an item to the configured sinks
  summary    print the short summary of an item
  favorite   toggle the favorite flag
  delete     remove an item
  stats      print collection counters
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		flag.Usage()
		os.Exit(2)
	}

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger, cmd, args); err != nil {
		var genErr *generation.GenerationError
		switch {
		case errors.As(err, &genErr):
			fmt.Fprintln(os.Stderr, genErr.Message)
		case errors.Is(err, generation.ErrAbandoned):
			fmt.Fprintln(os.Stderr, "generation cancelled")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		logger.Debug("command failed", "command", name, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, cmd command, args []string) error {
	slot, closeSlot, err := openSlot(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer closeSlot()

	repo := store.New(slot, logger)

	var sinks []service.ExportSink
	if cmd.exports {
		var closeSinks func()
		sinks, closeSinks, err = openSinks(cfg.Export, logger)
		if err != nil {
			return err
		}
		defer closeSinks()
	}

	client := agent.New(agent.Config{
		BaseURL:        cfg.Agent.BaseURL,
		APIKey:         cfg.Agent.APIKey,
		Timeout:        cfg.Agent.Timeout,
		MaxAttempts:    cfg.Agent.Retry.MaxAttempts,
		InitialBackoff: cfg.Agent.Retry.InitialBackoff,
		MaxBackoff:     cfg.Agent.Retry.MaxBackoff,
	}, logger)

	studio := service.NewStudio(
		generation.NewOrchestrator(client, generation.Config{
			AgentID:      cfg.Agent.ContentAgentID,
			TickInterval: cfg.Generation.TickInterval,
			Phases:       cfg.Generation.Phases,
		}, logger),
		generation.NewThumbnailOrchestrator(client, generation.ThumbnailConfig{
			AgentID: cfg.Agent.ThumbnailAgentID,
		}, logger),
		repo,
		sinks,
		logger,
		service.Options{SampleMode: cfg.SampleMode},
	)
	defer studio.Close()

	studio.Load(ctx)

	return cmd.run(ctx, studio, args)
}

func openSlot(cfg config.StorageConfig, logger *slog.Logger) (store.Slot, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Debug("connected to database", "slot", cfg.Slot)
		return postgres.NewSlotStore(db).Slot(cfg.Slot), func() { db.Close() }, nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(redisstore.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Debug("connected to redis", "slot", cfg.Slot)
		return redisstore.NewSlot(client, cfg.Slot), func() { client.Close() }, nil

	default:
		slot := file.NewSlot(cfg.Dir, cfg.Slot)
		logger.Debug("using file storage", "path", slot.Path())
		return slot, func() {}, nil
	}
}

func openSinks(cfg config.ExportConfig, logger *slog.Logger) ([]service.ExportSink, func(), error) {
	var sinks []service.ExportSink
	closeAll := func() {}

	if cfg.Clipboard {
		sinks = append(sinks, export.NewClipboard(logger))
	}
	if cfg.FileDir != "" {
		sinks = append(sinks, export.NewFile(cfg.FileDir, logger))
	}
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		sinks = append(sinks, rabbitMQ)
		closeAll = func() { rabbitMQ.Close() }
	}

	return sinks, closeAll, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// stdout carries command output
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
