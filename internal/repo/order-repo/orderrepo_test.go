package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/snekrasov/regcenter/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	order := &domain.Order{
		PublicID:        "6f1f7d0e-4b7a-4a57-9a44-8d7f9c2b3a10",
		Status:          domain.OrderStatusAwaitingPayment,
		TotalAmount:     decimal.NewFromInt(3500),
		StateDutyAmount: decimal.NewFromInt(2000),
		IncomePavilion1: decimal.Zero,
		IncomePavilion2: decimal.NewFromInt(1500),
		NeedPlate:       true,
		ServiceType:     "registration",
		FormData:        &domain.FormData{ClientFIO: "Иванов Иван"},
	}

	t.Run("Successful insert", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(order.PublicID, order.Status, order.TotalAmount, order.StateDutyAmount,
				order.IncomePavilion1, order.IncomePavilion2, order.NeedPlate, order.ServiceType,
				order.FormData, order.EmployeeID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

		err := repo.Create(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, 10, order.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(order.PublicID, order.Status, order.TotalAmount, order.StateDutyAmount,
				order.IncomePavilion1, order.IncomePavilion2, order.NeedPlate, order.ServiceType,
				order.FormData, order.EmployeeID).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), order)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func orderRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "public_id", "status", "total_amount", "state_duty_amount",
		"income_pavilion1", "income_pavilion2", "need_plate", "service_type",
		"form_data", "employee_id", "created_at", "updated_at",
	}).AddRow(
		10, "6f1f7d0e-4b7a-4a57-9a44-8d7f9c2b3a10", domain.OrderStatusPaid,
		decimal.NewFromInt(3500), decimal.NewFromInt(2000),
		decimal.Zero, decimal.NewFromInt(1500), true, "registration",
		&domain.FormData{ClientFIO: "Иванов Иван"}, (*int)(nil), now, now,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Order exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, public_id, status")).
			WithArgs(10).
			WillReturnRows(orderRows(now))

		order, err := repo.FindByID(context.Background(), 10)

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, domain.OrderStatusPaid, order.Status)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(3500)))
	})

	t.Run("Order does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, public_id, status")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		order, err := repo.FindByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, order)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	paid := domain.OrderStatusPaid
	needPlate := true

	t.Run("Filtered listing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
			WithArgs(&paid, &needPlate, 10).
			WillReturnRows(orderRows(now))

		orders, err := repo.List(context.Background(), domain.OrderFilter{Status: &paid, NeedPlate: &needPlate, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, 10, orders[0].ID)
	})

	t.Run("Limit defaults when unset", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
			WithArgs((*domain.OrderStatus)(nil), (*bool)(nil), 100).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		orders, err := repo.List(context.Background(), domain.OrderFilter{})

		assert.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestRepository_FindForPlateList(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE need_plate = TRUE")).
		WithArgs(50).
		WillReturnRows(orderRows(now))

	orders, err := repo.FindForPlateList(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.True(t, orders[0].NeedPlate)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs(domain.OrderStatusPaid, 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 10, domain.OrderStatusPaid)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FormHistory(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	form := &domain.FormData{ClientFIO: "Иванов Иван"}

	t.Run("Save snapshot", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO form_history")).
			WithArgs(10, form).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveFormHistory(context.Background(), 10, form)

		assert.NoError(t, err)
	})

	t.Run("List snapshots", func(t *testing.T) {
		orderID := 10
		rows := pgxmock.NewRows([]string{"id", "order_id", "form_data", "created_at"}).
			AddRow(1, &orderID, form, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM form_history")).
			WithArgs(20).
			WillReturnRows(rows)

		entries, err := repo.ListFormHistory(context.Background(), 20)

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Иванов Иван", entries[0].FormData.ClientFIO)
	})
}
