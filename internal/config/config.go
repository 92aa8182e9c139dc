// Package config reads service settings from the environment. A .env file in
// the working directory is loaded first when present; variables already set in
// the process environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverSpanner = "spanner"
	DriverMySQL   = "mysql"
)

// Blob backends.
const (
	BlobGCS = "gcs"
	BlobS3  = "s3"
)

// Config holds application configuration.
type Config struct {
	StoreDriver string
	Spanner     SpannerConfig
	MySQL       MySQLConfig
	Blob        BlobConfig
	HTTPPort    string
	GRPCPort    string
	LogMode     string
}

// SpannerConfig identifies the Spanner database. SPANNER_EMULATOR_HOST is
// picked up by the client library directly.
type SpannerConfig struct {
	ProjectID  string
	InstanceID string
	DatabaseID string
}

// Database returns the fully qualified database name.
func (c SpannerConfig) Database() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", c.ProjectID, c.InstanceID, c.DatabaseID)
}

type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// BlobConfig selects and configures the image existence oracle.
type BlobConfig struct {
	Backend       string
	DefaultBucket string

	GCSProject  string // billed for object lookups
	GCSEndpoint string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3Region    string
}

// MissingError lists every required variable that was unset or empty.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Keys, ", ")
}

// InvalidError reports a variable whose value could not be used.
type InvalidError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %s", e.Key, e.Value, e.Reason)
}

// Load reads .env files (default ".env") if they exist and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. All problems are reported together.
func FromEnv(getenv func(string) string) (*Config, error) {
	r := &reader{getenv: getenv}

	cfg := &Config{
		StoreDriver: r.optional("STORE_DRIVER", DriverSpanner),
		HTTPPort:    r.optional("HTTP_PORT", "8080"),
		GRPCPort:    r.optional("GRPC_PORT", "9090"),
		LogMode:     r.optional("LOG_MODE", "development"),
	}

	switch cfg.StoreDriver {
	case DriverSpanner:
		cfg.Spanner = SpannerConfig{
			ProjectID:  r.required("SPANNER_PROJECT_ID"),
			InstanceID: r.required("SPANNER_INSTANCE_ID"),
			DatabaseID: r.required("SPANNER_DATABASE_ID"),
		}
	case DriverMySQL:
		cfg.MySQL = MySQLConfig{
			Host:     r.required("MYSQL_HOST"),
			Port:     r.requiredInt("MYSQL_PORT"),
			User:     r.required("MYSQL_USER"),
			Password: r.required("MYSQL_PASSWORD"),
			Database: r.required("MYSQL_DATABASE"),
		}
	default:
		r.invalid("STORE_DRIVER", cfg.StoreDriver, "expected spanner or mysql")
	}

	cfg.Blob = BlobConfig{
		Backend:       r.optional("BLOB_BACKEND", BlobGCS),
		DefaultBucket: r.optional("BLOB_DEFAULT_BUCKET", ""),
	}
	switch cfg.Blob.Backend {
	case BlobGCS:
		cfg.Blob.GCSProject = r.required("GOOGLE_CLOUD_PROJECT")
		cfg.Blob.GCSEndpoint = r.optional("GCS_ENDPOINT", "")
	case BlobS3:
		cfg.Blob.S3Endpoint = r.required("S3_ENDPOINT")
		cfg.Blob.S3AccessKey = r.required("S3_ACCESS_KEY")
		cfg.Blob.S3SecretKey = r.required("S3_SECRET_KEY")
		cfg.Blob.S3UseSSL = r.optionalBool("S3_USE_SSL", false)
		cfg.Blob.S3Region = r.optional("S3_REGION", "us-east-1")
	default:
		r.invalid("BLOB_BACKEND", cfg.Blob.Backend, "expected gcs or s3")
	}

	switch cfg.LogMode {
	case "development", "production":
	default:
		r.invalid("LOG_MODE", cfg.LogMode, "expected development or production")
	}

	if err := r.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type reader struct {
	getenv  func(string) string
	missing []string
	errs    []error
}

func (r *reader) optional(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) required(key string) string {
	v := strings.TrimSpace(r.getenv(key))
	if v == "" {
		r.missing = append(r.missing, key)
	}
	return v
}

func (r *reader) requiredInt(key string) int {
	v := r.required(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		r.invalid(key, v, "expected a positive integer")
		return 0
	}
	return n
}

func (r *reader) optionalBool(key string, def bool) bool {
	v := r.optional(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.invalid(key, v, "expected a boolean")
		return def
	}
	return b
}

func (r *reader) invalid(key, value, reason string) {
	r.errs = append(r.errs, &InvalidError{Key: key, Value: value, Reason: reason})
}

func (r *reader) err() error {
	errs := r.errs
	if len(r.missing) > 0 {
		errs = append([]error{&MissingError{Keys: r.missing}}, errs...)
	}
	return errors.Join(errs...)
}
