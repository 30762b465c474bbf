package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

	employeeID := 5
	shiftID := 3
	payment := &domain.Payment{
		OrderID:    10,
		Amount:     decimal.NewFromInt(2000),
		Type:       domain.PaymentTypeStateDuty,
		EmployeeID: &employeeID,
		ShiftID:    &shiftID,
	}

	t.Run("Successful insert", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
			WithArgs(10, payment.Amount, domain.PaymentTypeStateDuty, &employeeID, &shiftID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		err := repo.Create(context.Background(), payment)

		assert.NoError(t, err)
		assert.Equal(t, 1, payment.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
			WithArgs(10, payment.Amount, domain.PaymentTypeStateDuty, &employeeID, &shiftID).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), payment)

		assert.Error(t, err)
	})
}

func TestRepository_ListByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "order_id", "amount", "type", "employee_id", "shift_id", "created_at"}).
		AddRow(1, 10, decimal.NewFromInt(2000), domain.PaymentTypeStateDuty, (*int)(nil), (*int)(nil), now).
		AddRow(2, 10, decimal.NewFromInt(1500), domain.PaymentTypeIncomePavilion2, (*int)(nil), (*int)(nil), now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
		WithArgs(10).
		WillReturnRows(rows)

	payments, err := repo.ListByOrderID(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, domain.PaymentTypeIncomePavilion2, payments[1].Type)
}

func TestRepository_SumByOrderAndType(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs(10, domain.PaymentTypeIncomePavilion2).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(2200)))

	sum, err := repo.SumByOrderAndType(context.Background(), 10, domain.PaymentTypeIncomePavilion2)

	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(2200)))
}

func TestRepository_SumPaidByOrders(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"order_id", "sum"}).
		AddRow(10, decimal.NewFromInt(3500)).
		AddRow(11, decimal.NewFromInt(2000))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY order_id")).
		WithArgs([]int{10, 11}).
		WillReturnRows(rows)

	sums, err := repo.SumPaidByOrders(context.Background(), []int{10, 11})

	assert.NoError(t, err)
	assert.Len(t, sums, 2)
	assert.True(t, sums[10].Equal(decimal.NewFromInt(3500)))
}

func TestRepository_SumByTypeForOrders(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"order_id", "sum"}).
		AddRow(10, decimal.NewFromInt(1500))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE order_id = ANY($1) AND type = $2")).
		WithArgs([]int{10, 11}, domain.PaymentTypeIncomePavilion2).
		WillReturnRows(rows)

	sums, err := repo.SumByTypeForOrders(context.Background(), []int{10, 11}, domain.PaymentTypeIncomePavilion2)

	assert.NoError(t, err)
	assert.Len(t, sums, 1)
	assert.True(t, sums[10].Equal(decimal.NewFromInt(1500)))
}

func TestRepository_SumByShiftID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE shift_id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(4200)))

	sum, err := repo.SumByShiftID(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(4200)))
}

func TestRepository_TotalsInPeriod(t *testing.T) {
	repo, mock := NewMock(t)

	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT order_id)")).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count"}).AddRow(decimal.NewFromInt(4501), 2))

	totals, err := repo.TotalsInPeriod(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 2, totals.OrdersCount)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(4501)))
}

func TestRepository_SumByTypeInPeriod(t *testing.T) {
	repo, mock := NewMock(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta("AND type = $3")).
		WithArgs(from, to, domain.PaymentTypeStateDuty).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(2000)))

	sum, err := repo.SumByTypeInPeriod(context.Background(), from, to, domain.PaymentTypeStateDuty)

	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(2000)))
}

func TestRepository_EmployeeTotalsInPeriod(t *testing.T) {
	repo, mock := NewMock(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	employeeID := 5

	rows := pgxmock.NewRows([]string{"employee_id", "count", "sum"}).
		AddRow(&employeeID, 12, decimal.NewFromInt(24000)).
		AddRow((*int)(nil), 1, decimal.NewFromInt(500))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY employee_id")).
		WithArgs(from, to).
		WillReturnRows(rows)

	totals, err := repo.EmployeeTotalsInPeriod(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, &employeeID, totals[0].EmployeeID)
	assert.Nil(t, totals[1].EmployeeID)
}
