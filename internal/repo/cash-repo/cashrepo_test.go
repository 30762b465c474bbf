package cashrepo

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

func shiftRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "pavilion", "opened_by_id", "opened_at", "closed_at",
		"closed_by_id", "opening_balance", "closing_balance", "status",
	}).AddRow(
		3, 1, 5, now, (*time.Time)(nil),
		(*int)(nil), decimal.NewFromInt(500), (*decimal.Decimal)(nil), domain.ShiftStatusOpen,
	)
}

func TestRepository_FindOpenShift(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Shift is open", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE pavilion = $1 AND status = 'OPEN'")).
			WithArgs(1).
			WillReturnRows(shiftRows(now))

		shift, err := repo.FindOpenShift(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, shift)
		assert.Equal(t, 3, shift.ID)
		assert.Equal(t, domain.ShiftStatusOpen, shift.Status)
	})

	t.Run("Register is closed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE pavilion = $1 AND status = 'OPEN'")).
			WithArgs(2).
			WillReturnError(pgx.ErrNoRows)

		shift, err := repo.FindOpenShift(context.Background(), 2)

		assert.NoError(t, err)
		assert.Nil(t, shift)
	})
}

func TestRepository_FindShiftByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Shift exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_shifts")).
			WithArgs(3).
			WillReturnRows(shiftRows(now))

		shift, err := repo.FindShiftByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.NotNil(t, shift)
		assert.True(t, shift.OpeningBalance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Shift does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_shifts")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		shift, err := repo.FindShiftByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, shift)
	})
}

func TestRepository_CreateShift(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	shift := &domain.CashShift{
		Pavilion:       1,
		OpenedByID:     5,
		OpeningBalance: decimal.NewFromInt(500),
		Status:         domain.ShiftStatusOpen,
	}

	t.Run("Successful insert", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cash_shifts")).
			WithArgs(1, 5, shift.OpeningBalance, domain.ShiftStatusOpen).
			WillReturnRows(pgxmock.NewRows([]string{"id", "opened_at"}).AddRow(3, now))

		err := repo.CreateShift(context.Background(), shift)

		assert.NoError(t, err)
		assert.Equal(t, 3, shift.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cash_shifts")).
			WithArgs(1, 5, shift.OpeningBalance, domain.ShiftStatusOpen).
			WillReturnError(errors.New("database error"))

		err := repo.CreateShift(context.Background(), shift)

		assert.Error(t, err)
	})
}

func TestRepository_CloseShift(t *testing.T) {
	repo, mock := NewMock(t)
	closedAt := time.Now()
	closing := decimal.NewFromInt(12000)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_shifts")).
		WithArgs(closing, 5, closedAt, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.CloseShift(context.Background(), 3, closing, 5, closedAt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListShifts(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("With filter", func(t *testing.T) {
		pavilion := 1
		status := domain.ShiftStatusOpen
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY opened_at DESC")).
			WithArgs(&pavilion, &status, 10).
			WillReturnRows(shiftRows(now))

		shifts, err := repo.ListShifts(context.Background(), domain.ShiftFilter{
			Pavilion: &pavilion,
			Status:   &status,
			Limit:    10,
		})

		assert.NoError(t, err)
		assert.Len(t, shifts, 1)
	})

	t.Run("Default limit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY opened_at DESC")).
			WithArgs((*int)(nil), (*domain.ShiftStatus)(nil), 50).
			WillReturnRows(shiftRows(now))

		shifts, err := repo.ListShifts(context.Background(), domain.ShiftFilter{})

		assert.NoError(t, err)
		assert.Len(t, shifts, 1)
	})
}

func TestRepository_CashRows(t *testing.T) {
	repo, mock := NewMock(t)

	row := &domain.CashRow{
		ClientName:  "Иванов Иван",
		Application: decimal.NewFromInt(300),
		StateDuty:   decimal.NewFromInt(2000),
		DKP:         decimal.NewFromInt(500),
		Insurance:   decimal.Zero,
		Plates:      decimal.NewFromInt(1500),
		Total:       decimal.NewFromInt(4300),
	}

	t.Run("Create", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cash_rows")).
			WithArgs(row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.CreateCashRow(context.Background(), row)

		assert.NoError(t, err)
		assert.Equal(t, 7, row.ID)
	})

	t.Run("Find by id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "client_name", "application", "state_duty", "dkp", "insurance", "plates", "total"}).
			AddRow(7, row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total)
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_rows")).
			WithArgs(7).
			WillReturnRows(rows)

		found, err := repo.FindCashRowByID(context.Background(), 7)

		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(4300)))
	})

	t.Run("Row does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_rows")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		found, err := repo.FindCashRowByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("List", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "client_name", "application", "state_duty", "dkp", "insurance", "plates", "total"}).
			AddRow(7, row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC")).
			WithArgs(20).
			WillReturnRows(rows)

		out, err := repo.ListCashRows(context.Background(), 20)

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Update", func(t *testing.T) {
		row.ID = 7
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_rows")).
			WithArgs(row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateCashRow(context.Background(), row)

		assert.NoError(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cash_rows")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeleteCashRow(context.Background(), 7)

		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PlateCashRows(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	row := &domain.PlateCashRow{
		ClientName: "Номера — выдача",
		Amount:     decimal.NewFromInt(-1500),
	}

	t.Run("Create", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO plate_cash_rows")).
			WithArgs(row.ClientName, row.Amount).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, now))

		err := repo.CreatePlateCashRow(context.Background(), row)

		assert.NoError(t, err)
		assert.Equal(t, 4, row.ID)
	})

	t.Run("Find by id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "client_name", "amount", "created_at"}).
			AddRow(4, row.ClientName, row.Amount, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM plate_cash_rows")).
			WithArgs(4).
			WillReturnRows(rows)

		found, err := repo.FindPlateCashRowByID(context.Background(), 4)

		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.True(t, found.Amount.Equal(decimal.NewFromInt(-1500)))
	})

	t.Run("Row does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM plate_cash_rows")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		found, err := repo.FindPlateCashRowByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("List", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "client_name", "amount", "created_at"}).
			AddRow(4, row.ClientName, row.Amount, now)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC")).
			WithArgs(10).
			WillReturnRows(rows)

		out, err := repo.ListPlateCashRows(context.Background(), 10)

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Update", func(t *testing.T) {
		row.ID = 4
		mock.ExpectExec(regexp.QuoteMeta("UPDATE plate_cash_rows")).
			WithArgs(row.ClientName, row.Amount, 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdatePlateCashRow(context.Background(), row)

		assert.NoError(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM plate_cash_rows")).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeletePlateCashRow(context.Background(), 4)

		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Payouts(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payout := &domain.PlatePayout{
		OrderID:    10,
		ClientName: "Иванов Иван",
		Amount:     decimal.NewFromInt(1100),
	}

	t.Run("Create", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO plate_payouts")).
			WithArgs(10, payout.ClientName, payout.Amount).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))

		err := repo.CreatePayout(context.Background(), payout)

		assert.NoError(t, err)
		assert.Equal(t, 2, payout.ID)
	})

	t.Run("Payout exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.PayoutExists(context.Background(), 10)

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("List unpaid", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "order_id", "client_name", "amount", "created_at", "paid_at", "paid_by_id"}).
			AddRow(2, 10, payout.ClientName, payout.Amount, now, (*time.Time)(nil), (*int)(nil))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE paid_at IS NULL")).
			WillReturnRows(rows)

		payouts, err := repo.ListUnpaidPayouts(context.Background())

		assert.NoError(t, err)
		assert.Len(t, payouts, 1)
		assert.Nil(t, payouts[0].PaidAt)
	})

	t.Run("Mark paid", func(t *testing.T) {
		paidAt := time.Now()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE plate_payouts")).
			WithArgs(paidAt, 5, []int{2}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkPayoutsPaid(context.Background(), []int{2}, 5, paidAt)

		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
