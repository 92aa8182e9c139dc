// Package services is the dependency container: it opens the store and the
// blob client, wires the catalog and closes everything on shutdown.
package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/mysqlrepo"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/spannerrepo"
	"github.com/light-bringer/procat-analytics/internal/blob"
	"github.com/light-bringer/procat-analytics/internal/config"
	"github.com/light-bringer/procat-analytics/internal/pkg/clock"
	"github.com/light-bringer/procat-analytics/internal/pkg/committer"
	"github.com/light-bringer/procat-analytics/internal/transport/grpc/health"
)

// HealthInterval is how often the gRPC health status is refreshed.
const HealthInterval = 10 * time.Second

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	DB            *gorm.DB
	Oracle        blob.Oracle

	Catalog *Catalog
	Health  *health.Reporter

	logger *zap.Logger
}

// NewServiceOptions opens the configured store and oracle and wires the catalog.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	s := &ServiceOptions{logger: logger}

	// 1. Store
	store, err := s.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 2. Blob oracle
	oracle, err := blob.New(ctx, cfg.Blob)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create blob oracle: %w", err)
	}
	s.Oracle = oracle
	logger.Info("blob oracle ready",
		zap.String("backend", cfg.Blob.Backend),
		zap.String("scheme", oracle.Scheme()),
		zap.String("default_bucket", cfg.Blob.DefaultBucket))

	// 3. Use cases, queries, transport
	s.Catalog = NewCatalog(store, oracle, cfg.Blob.DefaultBucket, clock.NewRealClock(), logger)
	s.Health = health.NewReporter(store.Health, HealthInterval, logger.Named("health"))

	return s, nil
}

func (s *ServiceOptions) openStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.Spanner.Database())
		if err != nil {
			return Store{}, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.SpannerClient = client
		s.logger.Info("spanner store ready", zap.String("database", cfg.Spanner.Database()))

		comm := committer.NewCommitter(client)
		readModel := spannerrepo.NewReadModel(client)
		return Store{
			Products:  spannerrepo.NewProductRepo(client, comm),
			Views:     spannerrepo.NewViewRepo(comm),
			ReadModel: readModel,
			Health:    readModel,
		}, nil

	case config.DriverMySQL:
		db, err := mysqlrepo.Open(mysqlrepo.Config{
			Host:     cfg.MySQL.Host,
			Port:     cfg.MySQL.Port,
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			Database: cfg.MySQL.Database,
		})
		if err != nil {
			return Store{}, err
		}
		s.DB = db
		s.logger.Info("mysql store ready",
			zap.String("host", cfg.MySQL.Host),
			zap.Int("port", cfg.MySQL.Port),
			zap.String("database", cfg.MySQL.Database))

		readModel := mysqlrepo.NewReadModel(db)
		return Store{
			Products:  mysqlrepo.NewProductRepo(db),
			Views:     mysqlrepo.NewViewRepo(db),
			ReadModel: readModel,
			Health:    readModel,
		}, nil

	default:
		return Store{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Oracle != nil {
		if err := s.Oracle.Close(); err != nil {
			s.logger.Warn("failed to close blob oracle", zap.Error(err))
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				s.logger.Warn("failed to close mysql pool", zap.Error(err))
			}
		}
	}
}
