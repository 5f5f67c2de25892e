package order

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/stall-queue/internal/store"
)

const testID = "0b6c3c8e-7f0e-4a8e-9d7a-3c1f2e9b5a10"

var orderCols = []string{
	"id", "customer_id", "items", "customer_name", "customer_phone", "total_amount",
	"status", "queue_number", "estimated_time", "payment_status", "payment_method", "check_in_time",
	"created_at", "updated_at",
}

func orderRow(rows *pgxmock.Rows, id string, customerID *string, queue int, status string) *pgxmock.Rows {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	return rows.AddRow(id, customerID, "2x tea", "Alice", "555-0100", "4.00",
		status, queue, 0, "pending", "cash", (*time.Time)(nil), now, now)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleNew() NewOrder {
	return NewOrder{
		ID:            testID,
		Items:         "2x tea",
		CustomerName:  "Alice",
		CustomerPhone: "555-0100",
		TotalAmount:   "4.00",
		PaymentMethod: "cash",
		QueueDate:     "2026-10-15",
	}
}

var customerCols = []string{"id", "phone", "full_name", "created_at", "updated_at"}

func insertArgs(customerID any) []any {
	return []any{testID, customerID, "2x tea", "Alice", "555-0100", "4.00", "cash", 0, "2026-10-15"}
}

// expectAttempt queues one create transaction up to the order insert.
func expectAttempt(mock pgxmock.PgxPoolIface) {
	name := "Alice"
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("INSERT INTO customers").WithArgs("555-0100", "Alice").
		WillReturnRows(pgxmock.NewRows(customerCols).
			AddRow("c0ffee00-0000-4000-8000-000000000001", "555-0100", &name, now, now))
}

func TestCreate_NullCustomerAndQueueNumber(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	expectAttempt(mock)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(insertArgs(nil)...).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 1, StatusPending))
	mock.ExpectCommit()

	o, err := repo.Create(context.Background(), sampleNew())
	require.NoError(t, err)
	assert.Equal(t, 1, o.QueueNumber)
	assert.Nil(t, o.CustomerID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "pending", o.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_CustomerIDVerbatim(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	cid := "b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"
	n := sampleNew()
	n.CustomerID = cid

	expectAttempt(mock)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(insertArgs(cid)...).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, &cid, 1, StatusPending))
	mock.ExpectCommit()

	o, err := repo.Create(context.Background(), n)
	require.NoError(t, err)
	require.NotNil(t, o.CustomerID)
	assert.Equal(t, cid, *o.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RetriesOnQueueCollision(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: store.QueueDayConstraint}
	expectAttempt(mock)
	mock.ExpectQuery("INSERT INTO orders").WithArgs(insertArgs(nil)...).WillReturnError(dup)
	mock.ExpectRollback()
	expectAttempt(mock)
	mock.ExpectQuery("INSERT INTO orders").WithArgs(insertArgs(nil)...).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 2, StatusPending))
	mock.ExpectCommit()

	o, err := repo.Create(context.Background(), sampleNew())
	require.NoError(t, err)
	assert.Equal(t, 2, o.QueueNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 2)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: store.QueueDayConstraint}
	for i := 0; i < 2; i++ {
		expectAttempt(mock)
		mock.ExpectQuery("INSERT INTO orders").WithArgs(insertArgs(nil)...).WillReturnError(dup)
		mock.ExpectRollback()
	}

	_, err := repo.Create(context.Background(), sampleNew())
	assert.ErrorIs(t, err, ErrQueueContention)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed order insert takes the customer upsert down with it.
func TestCreate_OtherErrorsRollBackWithoutRetry(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	expectAttempt(mock)
	mock.ExpectQuery("INSERT INTO orders").WithArgs(insertArgs(nil)...).WillReturnError(fk)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), sampleNew())
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23503", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_CustomerFailureSkipsInsert(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("INSERT INTO customers").WithArgs("555-0100", "Alice").
		WillReturnError(errors.New("value too long for type character varying(20)"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), sampleNew())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register customer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	rows := pgxmock.NewRows(orderCols)
	orderRow(rows, testID, nil, 2, StatusPending)
	orderRow(rows, "5d9a1b2c-0000-4000-8000-000000000001", nil, 1, StatusReady)
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders ORDER BY created_at DESC")).WillReturnRows(rows)

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].QueueNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	mock.ExpectQuery("FROM orders").WillReturnRows(pgxmock.NewRows(orderCols))

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListActive_FiltersByStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	mock.ExpectQuery("WHERE status = ANY").
		WithArgs(ActiveStatuses).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 1, StatusPreparing))

	out, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, StatusPreparing, out[0].Status)
}

func TestUpdate_OnlySuppliedFields(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	status := StatusPreparing
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING")).
		WithArgs(status, testID).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 1, status))

	o, err := repo.Update(context.Background(), testID, Update{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, o.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AllFields(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	status, pay := StatusReady, PaymentPaid
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE orders SET status = $1, payment_status = $2, check_in_time = $3, updated_at = NOW() WHERE id = $4 RETURNING")).
		WithArgs(status, pay, at, testID).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 1, status))

	_, err := repo.Update(context.Background(), testID, Update{Status: &status, PaymentStatus: &pay, CheckInTime: &at})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_EmptyDoesNotTouchStore(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	_, err := repo.Update(context.Background(), testID, Update{})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	status := StatusReady
	mock.ExpectQuery("UPDATE orders").WithArgs(status, testID).WillReturnRows(pgxmock.NewRows(orderCols))

	_, err := repo.Update(context.Background(), testID, Update{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(context.Background(), "not-a-uuid", Update{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_GuardedLostRace(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	status, prev := StatusReady, StatusPreparing
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND status = $3")).
		WithArgs(status, testID, prev).
		WillReturnRows(pgxmock.NewRows(orderCols))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(testID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.Update(context.Background(), testID, Update{Status: &status, IfStatus: &prev})
	assert.ErrorIs(t, err, ErrStatusChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckIn(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	mock.ExpectQuery("SET check_in_time = NOW\\(\\)").WithArgs(testID).
		WillReturnRows(orderRow(pgxmock.NewRows(orderCols), testID, nil, 1, StatusPending))

	o, err := repo.CheckIn(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, testID, o.ID)

	mock.ExpectQuery("SET check_in_time").WithArgs(testID).WillReturnRows(pgxmock.NewRows(orderCols))
	_, err = repo.CheckIn(context.Background(), testID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPGRepo(mock, time.Second, 3)

	mock.ExpectQuery("WHERE id = \\$1").WithArgs(testID).WillReturnRows(pgxmock.NewRows(orderCols))

	_, err := repo.GetByID(context.Background(), testID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
