package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeMigration(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("applies sql files in order", func(t *testing.T) {
		dir := t.TempDir()
		writeMigration(t, dir, "002_seed.sql", "INSERT INTO role VALUES ('ROLE_USER')")
		writeMigration(t, dir, "001_init.sql", "CREATE TABLE role (role_id TEXT)")
		writeMigration(t, dir, "README.md", "not a migration")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE role")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO role")).WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, RunMigrations(ctx, mock, dir, logger))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		dir := t.TempDir()
		writeMigration(t, dir, "001_init.sql", "CREATE TABLE role (role_id TEXT)")
		writeMigration(t, dir, "002_seed.sql", "INSERT INTO role VALUES ('ROLE_USER')")

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE role")).WillReturnError(errors.New("syntax error"))

		err = RunMigrations(ctx, mock, dir, logger)
		assert.ErrorContains(t, err, "001_init.sql")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing directory", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		err = RunMigrations(ctx, mock, filepath.Join(t.TempDir(), "nope"), logger)
		assert.ErrorContains(t, err, "read migrations")
	})

	t.Run("nil database skips", func(t *testing.T) {
		assert.NoError(t, RunMigrations(ctx, nil, "unused", logger))
	})
}

func TestRedis_NilSafe(t *testing.T) {
	var r *Redis
	assert.False(t, r.Enabled())
	assert.Error(t, r.Ping(context.Background()))
	r.Close()

	var p *Postgres
	assert.Error(t, p.Ping(context.Background()))
	assert.Nil(t, p.PoolHandle())
	p.Close()
}
