package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	lootv1 "github.com/KirkDiggler/rpg-loot/internal/handlers/loot/v1"
	"github.com/KirkDiggler/rpg-loot/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcAddr    string
	metricsAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the loot gRPC server and the metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address (overrides GRPC_ADDR)")
	serverCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "metrics listen address (overrides METRICS_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcAddr != "" {
		cfg.GRPCAddr = grpcAddr
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := lootv1.NewHandler(&lootv1.HandlerConfig{
		LootService:     a.loot,
		SettingsService: a.settings,
	})
	if err != nil {
		return fmt.Errorf("failed to create loot handler: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverFunc)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverFunc)),
		),
	)

	lootv1.RegisterLootServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(lootv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metrics.NewRouter(a.registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()
	go func() {
		slog.Info("Metrics server starting", "addr", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers")
	case err := <-errChan:
		srv.Stop()
		_ = metricsServer.Close()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Metrics server shutdown failed", "error", err)
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

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(p any) error {
	slog.Error("Recovered from panic in handler", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
