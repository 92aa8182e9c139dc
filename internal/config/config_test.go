package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnv_SpannerAndGCSDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"SPANNER_PROJECT_ID":   "test-project",
		"SPANNER_INSTANCE_ID":  "test-instance",
		"SPANNER_DATABASE_ID":  "catalog",
		"GOOGLE_CLOUD_PROJECT": "test-project",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverSpanner, cfg.StoreDriver)
	assert.Equal(t, "projects/test-project/instances/test-instance/databases/catalog", cfg.Spanner.Database())
	assert.Equal(t, BlobGCS, cfg.Blob.Backend)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "development", cfg.LogMode)
}

func TestFromEnv_MySQLAndS3(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"STORE_DRIVER":   "mysql",
		"MYSQL_HOST":     "db",
		"MYSQL_PORT":     "3306",
		"MYSQL_USER":     "catalog",
		"MYSQL_PASSWORD": "secret",
		"MYSQL_DATABASE": "products",
		"BLOB_BACKEND":   "s3",
		"S3_ENDPOINT":    "minio:9000",
		"S3_ACCESS_KEY":  "ak",
		"S3_SECRET_KEY":  "sk",
		"S3_USE_SSL":     "true",
		"LOG_MODE":       "production",
	}))
	require.NoError(t, err)

	assert.Equal(t, MySQLConfig{Host: "db", Port: 3306, User: "catalog", Password: "secret", Database: "products"}, cfg.MySQL)
	assert.Equal(t, "minio:9000", cfg.Blob.S3Endpoint)
	assert.True(t, cfg.Blob.S3UseSSL)
	assert.Equal(t, "us-east-1", cfg.Blob.S3Region)
	assert.Equal(t, "production", cfg.LogMode)
}

func TestFromEnv_ReportsEveryMissingKey(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"STORE_DRIVER": "mysql",
		"MYSQL_HOST":   "db",
	}))
	require.Error(t, err)

	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{
		"MYSQL_PORT",
		"MYSQL_USER",
		"MYSQL_PASSWORD",
		"MYSQL_DATABASE",
		"GOOGLE_CLOUD_PROJECT",
	}, missing.Keys)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"STORE_DRIVER":         "postgres",
		"BLOB_BACKEND":         "gcs",
		"GOOGLE_CLOUD_PROJECT": "p",
	}))
	require.Error(t, err)

	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "STORE_DRIVER", invalid.Key)
}

func TestFromEnv_BadPort(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"STORE_DRIVER":         "mysql",
		"MYSQL_HOST":           "db",
		"MYSQL_PORT":           "three",
		"MYSQL_USER":           "u",
		"MYSQL_PASSWORD":       "p",
		"MYSQL_DATABASE":       "d",
		"GOOGLE_CLOUD_PROJECT": "p",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MYSQL_PORT")
}

func TestLoad_ReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"SPANNER_PROJECT_ID=file-project\n"+
			"SPANNER_INSTANCE_ID=file-instance\n"+
			"SPANNER_DATABASE_ID=file-db\n"+
			"GOOGLE_CLOUD_PROJECT=file-project\n"+
			"HTTP_PORT=9999\n"), 0o600))

	for _, key := range []string{"STORE_DRIVER", "BLOB_BACKEND", "LOG_MODE", "GRPC_PORT",
		"SPANNER_PROJECT_ID", "SPANNER_INSTANCE_ID", "SPANNER_DATABASE_ID", "GOOGLE_CLOUD_PROJECT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "file-project", cfg.Spanner.ProjectID)
	assert.Equal(t, "7000", cfg.HTTPPort)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("STORE_DRIVER", "spanner")
	t.Setenv("SPANNER_PROJECT_ID", "p")
	t.Setenv("SPANNER_INSTANCE_ID", "i")
	t.Setenv("SPANNER_DATABASE_ID", "d")
	t.Setenv("BLOB_BACKEND", "gcs")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "p")
	t.Setenv("LOG_MODE", "development")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
