package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/procat-analytics/internal/config"
	"github.com/light-bringer/procat-analytics/internal/logger"
	"github.com/light-bringer/procat-analytics/internal/services"
	httptransport "github.com/light-bringer/procat-analytics/internal/transport/http"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	// 1. Load configuration (.env, then environment)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("starting product catalog service",
		zap.String("store", cfg.StoreDriver),
		zap.String("blob", cfg.Blob.Backend),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("grpc_port", cfg.GRPCPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. gRPC: health + reflection
	grpcServer := grpc.NewServer()
	serviceOpts.Health.Register(grpcServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	healthCtx, stopHealth := context.WithCancel(ctx)
	defer stopHealth()
	go serviceOpts.Health.Run(healthCtx)

	errCh := make(chan error, 2)
	go func() {
		zlog.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	// 4. HTTP: catalog API
	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httptransport.NewRouter(serviceOpts.Catalog.HTTPHandler, zlog.Named("http")),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	// 5. Wait for a signal or a server failure
	var runErr error
	select {
	case <-ctx.Done():
		zlog.Info("shutting down gracefully")
	case runErr = <-errCh:
		zlog.Error("server error, shutting down", zap.Error(runErr))
	}

	stopHealth()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("HTTP server shutdown error", zap.Error(err))
	}
	grpcServer.GracefulStop()

	return runErr
}
