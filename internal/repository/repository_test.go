// Package repository tests use testcontainers-go to spin up a PostgreSQL
// container; they skip when Docker is unavailable.
package repository

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// checkDockerAvailable checks if Docker is available and running
func checkDockerAvailable() bool {
	cmd := exec.Command("docker", "info")
	err := cmd.Run()
	return err == nil
}

// setupTestDB creates a PostgreSQL container and returns a migrated
// repository. Skips the test if Docker is not available.
func setupTestDB(t *testing.T) *ChatConfigRepository {
	t.Helper()

	if !checkDockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	repo := NewChatConfigRepository(pool)
	require.NoError(t, repo.Migrate(ctx))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return repo
}

func TestChatConfigRepository_Get(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, -100)
	assert.ErrorIs(t, err, ErrChatNotFound)

	require.NoError(t, repo.AddManager(ctx, -100, 10))

	cfg, err := repo.Get(ctx, -100)
	require.NoError(t, err)
	assert.Equal(t, int64(-100), cfg.ChatID)
	assert.Equal(t, []int64{10}, cfg.Managers)
	assert.False(t, cfg.CreatedAt.IsZero())
}

func TestChatConfigRepository_AddManager(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AddManager(ctx, -100, 10))
	require.NoError(t, repo.AddManager(ctx, -100, 11))
	// Re-adding an existing manager is a no-op.
	require.NoError(t, repo.AddManager(ctx, -100, 10))

	managers, err := repo.ListManagers(ctx, -100)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11}, managers)

	ok, err := repo.IsManager(ctx, -100, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsManager(ctx, -100, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChatConfigRepository_RemoveManager(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.RemoveManager(ctx, -100, 10), ErrChatNotFound)

	require.NoError(t, repo.AddManager(ctx, -100, 10))
	require.NoError(t, repo.AddManager(ctx, -100, 11))

	require.NoError(t, repo.RemoveManager(ctx, -100, 10))
	managers, err := repo.ListManagers(ctx, -100)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, managers)

	// Removing a non-manager from an existing chat is a no-op.
	require.NoError(t, repo.RemoveManager(ctx, -100, 99))

	ok, err := repo.IsManager(ctx, -100, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChatConfigRepository_IsManagerUnknownChat(t *testing.T) {
	repo := setupTestDB(t)

	ok, err := repo.IsManager(context.Background(), -999, 10)
	require.NoError(t, err)
	assert.False(t, ok, "chat without a config row has no managers")
}

func TestChatConfigRepository_ChatsAreIndependent(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.AddManager(ctx, -100, 10))
	require.NoError(t, repo.AddManager(ctx, -200, 20))

	ok, err := repo.IsManager(ctx, -200, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	managers, err := repo.ListManagers(ctx, -200)
	require.NoError(t, err)
	assert.Equal(t, []int64{20}, managers)
}
