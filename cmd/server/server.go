package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/vadim010975/retro-tactics/internal/board"
	"github.com/vadim010975/retro-tactics/internal/config"
	"github.com/vadim010975/retro-tactics/internal/handlers/tactics/v1alpha1"
	"github.com/vadim010975/retro-tactics/internal/handlers/web"
	"github.com/vadim010975/retro-tactics/internal/orchestrators/game"
	"github.com/vadim010975/retro-tactics/internal/pkg/clock"
	"github.com/vadim010975/retro-tactics/internal/pkg/idgen"
	"github.com/vadim010975/retro-tactics/internal/redis"
	"github.com/vadim010975/retro-tactics/internal/repositories/snapshots"
)

var (
	grpcPort  int
	httpAddr  string
	storeKind string
	debug     bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the game server",
	Long: `Start the gRPC game service and the browser HTTP gateway. Settings come from
TACTICS_* environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP gateway address")
	serverCmd.Flags().StringVar(&storeKind, "store", config.StoreMemory, "snapshot store: memory, redis or sqlite")
	serverCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
}

func runServer(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	archetypes, err := config.LoadArchetypes(cfg.ArchetypesFile)
	if err != nil {
		return fmt.Errorf("failed to load archetypes: %w", err)
	}
	geom, err := board.New(cfg.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	games, err := game.NewOrchestrator(&game.Config{
		IDGenerator:  idgen.NewUUID("game"),
		Clock:        clock.New(),
		Repository:   repo,
		Roller:       dice.DefaultRoller,
		Geometry:     geom,
		Archetypes:   archetypes,
		TeamSize:     cfg.TeamSize,
		TickInterval: cfg.TickInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create game orchestrator: %w", err)
	}
	defer games.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: games})
	if err != nil {
		return fmt.Errorf("failed to create game handler: %w", err)
	}
	router, err := web.NewRouter(&web.Config{GameService: games, AllowOrigin: "*"})
	if err != nil {
		return fmt.Errorf("failed to create http gateway: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	v1alpha1.RegisterGameServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.GameService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP gateway starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers...")
	case err := <-errChan:
		srv.Stop()
		_ = httpServer.Close()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	healthServer.Shutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP gateway shutdown failed", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

// loadConfig reads the environment and applies flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("http-addr") {
		cfg.HTTPAddr = httpAddr
	}
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openRepository(ctx context.Context, cfg *config.Config) (snapshots.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: client, TTL: cfg.SnapshotTTL})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	case config.StoreSQLite:
		repo, err := snapshots.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		return snapshots.NewInMemory(), func() {}, nil
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
