package testutil

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/mysqlrepo"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
)

// SetupMySQLTest connects to the MySQL instance named by MYSQL_TEST_HOST and
// friends, skipping the test when none is configured. The schema from
// migrations/mysql must already be applied.
func SetupMySQLTest(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	host := os.Getenv("MYSQL_TEST_HOST")
	if host == "" {
		t.Skip("MYSQL_TEST_HOST not set")
	}
	port, err := strconv.Atoi(envOr("MYSQL_TEST_PORT", "3306"))
	require.NoError(t, err)

	db, err := mysqlrepo.Open(mysqlrepo.Config{
		Host:     host,
		Port:     port,
		User:     envOr("MYSQL_TEST_USER", "root"),
		Password: envOr("MYSQL_TEST_PASSWORD", ""),
		Database: envOr("MYSQL_TEST_DATABASE", "catalog_test"),
	})
	require.NoError(t, err, "failed to connect to MySQL")

	CleanMySQL(t, db)

	cleanup := func() {
		CleanMySQL(t, db)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup
}

// CleanMySQL empties both tables, counters first.
func CleanMySQL(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{m_view.TableName, m_product.TableName} {
		err := db.WithContext(context.Background()).Exec("DELETE FROM " + table).Error
		require.NoError(t, err, "failed to clean %s", table)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
