package inventory

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recID = "7a0e1c52-3f5d-4c2b-9f6e-2d8b1a4c9e33"

var recCols = []string{"id", "menu_item_id", "date", "available_quantity", "sold_quantity", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func intp(i int) *int { return &i }

func TestForDate_OrderedByItem(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)
	now := time.Now().UTC()

	mock.ExpectQuery("ORDER BY menu_item_id").WithArgs("2026-10-15").
		WillReturnRows(pgxmock.NewRows(recCols).
			AddRow(recID, "chotpoti", "2026-10-15", 100, 0, now, now).
			AddRow("8b1f2d63-4a6e-4d3c-8a7f-3e9c2b5d0f44", "fuchka", "2026-10-15", 100, 3, now, now))

	out, err := repo.ForDate(context.Background(), "2026-10-15")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "chotpoti", out[0].MenuItemID)
	assert.Equal(t, 3, out[1].SoldQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForDate_NoneSeeded(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)

	mock.ExpectQuery("FROM menu_inventory").WithArgs("1999-01-01").WillReturnRows(pgxmock.NewRows(recCols))

	out, err := repo.ForDate(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestSeed_SkipsExistingRows(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)

	// first run inserts everything
	mock.ExpectBeginTx(pgx.TxOptions{})
	for _, item := range Catalog {
		mock.ExpectExec("ON CONFLICT \\(menu_item_id, date\\) DO NOTHING").
			WithArgs(item, "2026-10-15", DefaultQuantity).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	// second run finds every row already present
	mock.ExpectBeginTx(pgx.TxOptions{})
	for _, item := range Catalog {
		mock.ExpectExec("ON CONFLICT").
			WithArgs(item, "2026-10-15", DefaultQuantity).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
	}
	mock.ExpectCommit()

	n, err := repo.Seed(context.Background(), "2026-10-15", Catalog, DefaultQuantity)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), n)

	n, err = repo.Seed(context.Background(), "2026-10-15", Catalog, DefaultQuantity)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AppliesSuppliedQuantities(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)
	now := time.Now().UTC()

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE menu_inventory SET sold_quantity = $1, updated_at = NOW() WHERE id = $2 RETURNING")).
		WithArgs(5, recID).
		WillReturnRows(pgxmock.NewRows(recCols).AddRow(recID, "tea", "2026-10-15", 100, 5, now, now))
	mock.ExpectCommit()

	rec, err := repo.Update(context.Background(), recID, Update{SoldQuantity: intp(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.SoldQuantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_OversoldIsRolledBack(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)
	now := time.Now().UTC()

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery(regexp.QuoteMeta("SET available_quantity = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(2, recID).
		WillReturnRows(pgxmock.NewRows(recCols).AddRow(recID, "tea", "2026-10-15", 2, 5, now, now))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), recID, Update{AvailableQuantity: intp(2)})
	assert.ErrorIs(t, err, ErrOversold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFoundAndEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("UPDATE menu_inventory").WithArgs(10, recID).WillReturnRows(pgxmock.NewRows(recCols))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), recID, Update{AvailableQuantity: intp(10)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(context.Background(), "garbage", Update{AvailableQuantity: intp(10)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(context.Background(), recID, Update{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
