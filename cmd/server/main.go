package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/config"
	"github.com/magefree/duel-server-go/internal/fileio"
	"github.com/magefree/duel-server-go/internal/game"
	"github.com/magefree/duel-server-go/internal/logging"
	"github.com/magefree/duel-server-go/internal/repository"
	"github.com/magefree/duel-server-go/internal/server"
	"github.com/magefree/duel-server-go/internal/session"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	inputPath  = flag.String("input", "", "session input document (overrides io.input)")
	outputPath = flag.String("output", "", "result document (overrides io.output)")
	version    = "dev" // set via ldflags during build
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] run|serve\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := flag.Arg(0)
	if mode == "" {
		mode = "run"
	}

	logger.Info("starting duel server",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.String("mode", mode),
	)

	switch mode {
	case "run":
		err = runBatch(ctx, cfg, logger)
	case "serve":
		err = serve(ctx, cfg, logger)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("duel server failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// sessionOptions wires the rules, replay recorder and history store shared by
// every session the process runs.
func sessionOptions(cfg *config.Config, store repository.HistoryStore, logger *zap.Logger) []session.Option {
	opts := []session.Option{
		session.WithRules(game.Rules{
			HeroHealth:   cfg.Rules.HeroHealth,
			StartingMana: cfg.Rules.StartingMana,
			MaxManaGrant: cfg.Rules.MaxManaGrant,
		}),
	}
	if cfg.Replay.Enabled {
		opts = append(opts, session.WithReplayRecorder(game.NewReplayRecorder(logger, cfg.Replay.Directory)))
	}
	if store != nil {
		opts = append(opts, session.WithHistoryStore(store))
	}
	return opts
}

func openHistory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.HistoryStore, error) {
	connectCtx := ctx
	if cfg.Database.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()
	}
	store, err := repository.NewStore(connectCtx, cfg.Database.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if store == nil {
		logger.Info("database url not configured; game history disabled")
		return nil, nil
	}
	return store, nil
}

func runBatch(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	in := cfg.IO.Input
	if *inputPath != "" {
		in = *inputPath
	}
	out := cfg.IO.Output
	if *outputPath != "" {
		out = *outputPath
	}
	if in == "" {
		return errors.New("no input document: set -input or io.input")
	}

	input, err := fileio.ReadInput(in)
	if err != nil {
		return err
	}

	store, err := openHistory(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	sess := session.New(logger, sessionOptions(cfg, store, logger)...)
	results, err := sess.Run(ctx, input)
	if err != nil {
		return err
	}
	if err := fileio.WriteResults(out, results); err != nil {
		return err
	}

	logger.Info("session written",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("games", len(input.Games)),
		zap.Int("results", len(results)),
	)
	return nil
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, err := openHistory(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	newRunner := func() server.Runner {
		return session.New(logger, sessionOptions(cfg, store, logger)...)
	}

	grpcServer := server.NewGRPCServer(cfg.Server.GRPC, logger)
	lis, err := net.Listen("tcp", cfg.Server.GRPC.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPC.Address, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(lis); serveErr != nil {
			logger.Error("gRPC server error", zap.Error(serveErr))
		}
	}()
	grpcServer.SetServing(true)

	logger.Info("duel server initialized",
		zap.String("version", version),
		zap.String("grpc_address", cfg.Server.GRPC.Address),
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
	)

	err = server.StartWebSocketServer(ctx, cfg.Server.WebSocket, newRunner, logger)

	logger.Info("shutting down gracefully...")
	grpcServer.SetServing(false)
	grpcServer.Stop()
	logger.Info("duel server stopped")
	return err
}
