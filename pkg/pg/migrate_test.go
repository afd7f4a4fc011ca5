package pg_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/pkg/pg"
)

func TestMigrate_ValidatesPathBeforeConnecting(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		err := pg.Migrate(ctx, nil, pg.Config{}, log)
		assert.ErrorIs(t, err, pg.ErrFailedToApplyMigrations)
		assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)
	})

	t.Run("missing directory on disk", func(t *testing.T) {
		cfg := pg.Config{MigrationsPath: filepath.Join(t.TempDir(), "missing")}
		assert.ErrorIs(t, pg.Migrate(ctx, nil, cfg, log), pg.ErrMigrationsDirNotFound)
	})

	t.Run("missing directory in fs", func(t *testing.T) {
		fsys := fstest.MapFS{"other/00001_init.sql": {Data: []byte("-- +goose Up\n")}}
		cfg := pg.Config{MigrationsPath: "migrations"}
		assert.ErrorIs(t, pg.Migrate(ctx, nil, cfg, log, pg.WithMigrationsFS(fsys)), pg.ErrMigrationsDirNotFound)
	})
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := pg.Healthcheck(pingerFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	down := errors.New("connection refused")
	failing := pg.Healthcheck(pingerFunc(func(context.Context) error { return down }))
	err := failing(context.Background())
	assert.ErrorIs(t, err, pg.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, down)
}

func TestConnect_EmptyConnectionString(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}
