//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// runStoreLifecycle exercises the full snapshot store flow against the
// configured backend: migrate, import, status, series, metrics.
func runStoreLifecycle(t *testing.T) {
	// Run impact snapshot migrate (applies all migrations)
	_, err := runImpactCommand(t, "snapshot", "migrate")
	require.NoError(t, err)

	// Run impact snapshot import
	_, err = runImpactCommand(t, "snapshot", "import", "integration/testdata/snapshot.json")
	require.NoError(t, err)

	// Run impact snapshot status
	output, err := runImpactCommand(t, "snapshot", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Metrics: 3")
	assert.Contains(t, output, "Data points: 6")

	// Run impact series against the store (no snapshot path argument)
	_, err = runImpactCommand(t, "series",
		"--range-start", "2024-01-01",
		"--range-end", "2024-01-31")
	require.NoError(t, err)

	// Run impact metrics against the store
	_, err = runImpactCommand(t, "metrics", "--output", "json")
	require.NoError(t, err)

	// Re-import replaces the snapshot instead of appending
	_, err = runImpactCommand(t, "snapshot", "import", "integration/testdata/snapshot.json")
	require.NoError(t, err)

	output, err = runImpactCommand(t, "snapshot", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Data points: 6")
}

// TestImpactWithMySQL tests the impact CLI with a MySQL store backend.
func TestImpactWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "impact",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/impact", host, port.Port())

	// Set environment variables
	_ = os.Setenv("IMPACT_STORE_BACKEND", "mysql")
	_ = os.Setenv("IMPACT_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("IMPACT_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("IMPACT_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}

// TestImpactWithPostgres tests the impact CLI with a PostgreSQL store backend.
func TestImpactWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("IMPACT_STORE_BACKEND", "postgresql")
	_ = os.Setenv("IMPACT_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("IMPACT_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("IMPACT_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}
