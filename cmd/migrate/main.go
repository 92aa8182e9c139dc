package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/mysqlrepo"
	"github.com/light-bringer/procat-analytics/internal/logger"
)

var (
	driver     = flag.String("driver", getEnvOrDefault("STORE_DRIVER", "spanner"), "Store driver: spanner or mysql")
	migrateDir = flag.String("migrations", "migrations", "Directory containing <driver>/*.sql migration files")

	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "product-catalog-db"), "Spanner database ID")

	mysqlHost     = flag.String("mysql-host", getEnvOrDefault("MYSQL_HOST", "localhost"), "MySQL host")
	mysqlPort     = flag.Int("mysql-port", getEnvIntOrDefault("MYSQL_PORT", 3306), "MySQL port")
	mysqlUser     = flag.String("mysql-user", getEnvOrDefault("MYSQL_USER", "root"), "MySQL user")
	mysqlPassword = flag.String("mysql-password", getEnvOrDefault("MYSQL_PASSWORD", ""), "MySQL password")
	mysqlDatabase = flag.String("mysql-database", getEnvOrDefault("MYSQL_DATABASE", "catalog"), "MySQL database")
)

func main() {
	flag.Parse()

	zlog, err := logger.New("development")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := zlog.Sugar()

	ctx := context.Background()

	var runErr error
	switch *driver {
	case "spanner":
		if emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST"); emulatorHost != "" {
			log.Infof("Using Spanner emulator at %s", emulatorHost)
		}
		runErr = runSpanner(ctx, log)
	case "mysql":
		runErr = runMySQL(ctx, log)
	default:
		runErr = fmt.Errorf("unknown driver %q", *driver)
	}

	if runErr != nil {
		log.Fatalf("Migration failed: %v", runErr)
	}
	log.Info("Migrations completed successfully")
}

func runSpanner(ctx context.Context, log *zap.SugaredLogger) error {
	if err := ensureInstance(ctx, log); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	if err := ensureDatabase(ctx, log); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if err := applySpannerMigrations(ctx, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func ensureInstance(ctx context.Context, log *zap.SugaredLogger) error {
	log.Infof("Ensuring instance %s exists...", *instanceID)

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{
		Name: fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
	})
	if err == nil {
		log.Info("Instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		log.Warnf("Unexpected error checking instance: %v", err)
		return nil
	}

	log.Info("Creating instance...")
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		log.Info("Instance already exists")
		return nil
	}

	// The emulator may finish before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warnf("Warning during instance creation: %v", err)
	}

	log.Info("Instance created successfully")
	return nil
}

func ensureDatabase(ctx context.Context, log *zap.SugaredLogger) error {
	log.Infof("Ensuring database %s exists...", *databaseID)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{
		Name: spannerDBPath(),
	})
	if err == nil {
		log.Info("Database already exists")
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Info("Creating database...")
		op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create database: %w", err)
			}
			log.Info("Database already exists")
			return nil
		}

		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for database creation: %w", err)
		}

		log.Info("Database created successfully")
		return nil
	}

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.Warnf("Proceeding with database (emulator mode): %v", err)
		return nil
	}

	return fmt.Errorf("failed to check database: %w", err)
}

func applySpannerMigrations(ctx context.Context, log *zap.SugaredLogger) error {
	files, err := migrationFiles("spanner")
	if err != nil || len(files) == 0 {
		return err
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	for _, file := range files {
		name := filepath.Base(file)
		log.Infof("Applying %s...", name)

		statements, err := readStatements(file)
		if err != nil {
			return err
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   spannerDBPath(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", name, err)
		}

		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", name, err)
		}

		log.Infof("Successfully applied %s", name)
	}

	return nil
}

func runMySQL(ctx context.Context, log *zap.SugaredLogger) error {
	files, err := migrationFiles("mysql")
	if err != nil || len(files) == 0 {
		return err
	}

	db, err := mysqlrepo.Open(mysqlrepo.Config{
		Host:     *mysqlHost,
		Port:     *mysqlPort,
		User:     *mysqlUser,
		Password: *mysqlPassword,
		Database: *mysqlDatabase,
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	for _, file := range files {
		name := filepath.Base(file)
		log.Infof("Applying %s...", name)

		statements, err := readStatements(file)
		if err != nil {
			return err
		}

		for _, stmt := range statements {
			if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to apply %s: %w", name, err)
			}
		}

		log.Infof("Successfully applied %s", name)
	}

	return nil
}

func migrationFiles(driverDir string) ([]string, error) {
	dir := filepath.Join(*migrateDir, driverDir)
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		zap.S().Warnf("No migration files found in %s", dir)
	}
	return files, nil
}

func readStatements(file string) ([]string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration file %s: %w", file, err)
	}
	return splitDDLStatements(string(content)), nil
}

func spannerDBPath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)
}

// splitDDLStatements drops blank and "--" comment lines and splits on ";".
func splitDDLStatements(content string) []string {
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}
