package overlay_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RodReBer/barraca-toto/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := overlay.NewPostgresStore(db)
	ctx := context.Background()

	t.Run("decodes the stored blob", func(t *testing.T) {
		raw, err := json.Marshal(overlayFixture())
		require.NoError(t, err)

		mock.ExpectQuery("SELECT data FROM catalog_overlay WHERE key = \\$1").
			WithArgs(overlay.StorageKey).
			WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, overlayFixture(), loaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is an empty overlay", func(t *testing.T) {
		mock.ExpectQuery("SELECT data FROM catalog_overlay WHERE key = \\$1").
			WithArgs(overlay.StorageKey).
			WillReturnError(sql.ErrNoRows)

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt blob is an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT data FROM catalog_overlay WHERE key = \\$1").
			WithArgs(overlay.StorageKey).
			WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("{not json")))

		_, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := overlay.NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO catalog_overlay").
		WithArgs(overlay.StorageKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), overlayFixture()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
