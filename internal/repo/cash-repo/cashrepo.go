package cashrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const shiftColumns = `id, pavilion, opened_by_id, opened_at, closed_at, closed_by_id, opening_balance, closing_balance, status`

func scanShift(row pgx.Row) (*domain.CashShift, error) {
	var shift domain.CashShift
	err := row.Scan(
		&shift.ID, &shift.Pavilion, &shift.OpenedByID, &shift.OpenedAt,
		&shift.ClosedAt, &shift.ClosedByID, &shift.OpeningBalance, &shift.ClosingBalance, &shift.Status,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindOpenShift returns the open shift of the pavilion, or nil when the cash
// register is closed.
func (r *Repository) FindOpenShift(ctx context.Context, pavilion int) (*domain.CashShift, error) {
	query := `
        SELECT ` + shiftColumns + `
        FROM cash_shifts
        WHERE pavilion = $1 AND status = 'OPEN'
        ORDER BY opened_at DESC
        LIMIT 1
    `
	shift, err := scanShift(r.db.QueryRow(ctx, query, pavilion))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open shift", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (r *Repository) FindShiftByID(ctx context.Context, id int) (*domain.CashShift, error) {
	query := `
        SELECT ` + shiftColumns + `
        FROM cash_shifts
        WHERE id = $1
    `
	shift, err := scanShift(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shift", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (r *Repository) CreateShift(ctx context.Context, shift *domain.CashShift) error {
	query := `
        INSERT INTO cash_shifts (pavilion, opened_by_id, opening_balance, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, opened_at
    `
	row := r.db.QueryRow(ctx, query, shift.Pavilion, shift.OpenedByID, shift.OpeningBalance, shift.Status)
	if err := row.Scan(&shift.ID, &shift.OpenedAt); err != nil {
		zap.L().Error("can't create shift", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CloseShift(ctx context.Context, id int, closingBalance decimal.Decimal, closedByID int, closedAt time.Time) error {
	query := `
        UPDATE cash_shifts
        SET status = 'CLOSED', closing_balance = $1, closed_by_id = $2, closed_at = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, closingBalance, closedByID, closedAt, id); err != nil {
		zap.L().Error("can't close shift", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.CashShift, error) {
	query := `
        SELECT ` + shiftColumns + `
        FROM cash_shifts
        WHERE ($1::integer IS NULL OR pavilion = $1)
          AND ($2::varchar IS NULL OR status = $2)
        ORDER BY opened_at DESC
        LIMIT $3
    `
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, query, filter.Pavilion, filter.Status, limit)
	if err != nil {
		zap.L().Error("can't list shifts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shifts []domain.CashShift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			zap.L().Error("can't scan shift row", zap.Error(err))
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	return shifts, rows.Err()
}

func (r *Repository) CreateCashRow(ctx context.Context, row *domain.CashRow) error {
	query := `
        INSERT INTO cash_rows (client_name, application, state_duty, dkp, insurance, plates, total)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	res := r.db.QueryRow(ctx, query, row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total)
	if err := res.Scan(&row.ID); err != nil {
		zap.L().Error("can't create cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindCashRowByID(ctx context.Context, id int) (*domain.CashRow, error) {
	query := `
        SELECT id, client_name, application, state_duty, dkp, insurance, plates, total
        FROM cash_rows
        WHERE id = $1
    `
	var row domain.CashRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.ClientName, &row.Application, &row.StateDuty, &row.DKP, &row.Insurance, &row.Plates, &row.Total,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cash row", zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListCashRows(ctx context.Context, limit int) ([]domain.CashRow, error) {
	query := `
        SELECT id, client_name, application, state_duty, dkp, insurance, plates, total
        FROM cash_rows
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list cash rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.CashRow
	for rows.Next() {
		var row domain.CashRow
		err := rows.Scan(&row.ID, &row.ClientName, &row.Application, &row.StateDuty, &row.DKP, &row.Insurance, &row.Plates, &row.Total)
		if err != nil {
			zap.L().Error("can't scan cash row", zap.Error(err))
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateCashRow(ctx context.Context, row *domain.CashRow) error {
	query := `
        UPDATE cash_rows
        SET client_name = $1, application = $2, state_duty = $3, dkp = $4, insurance = $5, plates = $6, total = $7
        WHERE id = $8
    `
	if _, err := r.db.Exec(ctx, query, row.ClientName, row.Application, row.StateDuty, row.DKP, row.Insurance, row.Plates, row.Total, row.ID); err != nil {
		zap.L().Error("can't update cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteCashRow(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cash_rows WHERE id = $1`, id); err != nil {
		zap.L().Error("can't delete cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error {
	query := `
        INSERT INTO plate_cash_rows (client_name, amount)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	res := r.db.QueryRow(ctx, query, row.ClientName, row.Amount)
	if err := res.Scan(&row.ID, &row.CreatedAt); err != nil {
		zap.L().Error("can't create plate cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPlateCashRowByID(ctx context.Context, id int) (*domain.PlateCashRow, error) {
	query := `
        SELECT id, client_name, amount, created_at
        FROM plate_cash_rows
        WHERE id = $1
    `
	var row domain.PlateCashRow
	err := r.db.QueryRow(ctx, query, id).Scan(&row.ID, &row.ClientName, &row.Amount, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find plate cash row", zap.Error(err))
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListPlateCashRows(ctx context.Context, limit int) ([]domain.PlateCashRow, error) {
	query := `
        SELECT id, client_name, amount, created_at
        FROM plate_cash_rows
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list plate cash rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlateCashRow
	for rows.Next() {
		var row domain.PlateCashRow
		if err := rows.Scan(&row.ID, &row.ClientName, &row.Amount, &row.CreatedAt); err != nil {
			zap.L().Error("can't scan plate cash row", zap.Error(err))
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *Repository) UpdatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error {
	query := `
        UPDATE plate_cash_rows
        SET client_name = $1, amount = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, row.ClientName, row.Amount, row.ID); err != nil {
		zap.L().Error("can't update plate cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeletePlateCashRow(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM plate_cash_rows WHERE id = $1`, id); err != nil {
		zap.L().Error("can't delete plate cash row", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreatePayout(ctx context.Context, payout *domain.PlatePayout) error {
	query := `
        INSERT INTO plate_payouts (order_id, client_name, amount)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	res := r.db.QueryRow(ctx, query, payout.OrderID, payout.ClientName, payout.Amount)
	if err := res.Scan(&payout.ID, &payout.CreatedAt); err != nil {
		zap.L().Error("can't create plate payout", zap.Error(err))
		return err
	}
	return nil
}

// PayoutExists reports whether a payout was already registered for the order.
// Registration is idempotent; the unique index on order_id is the backstop.
func (r *Repository) PayoutExists(ctx context.Context, orderID int) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM plate_payouts WHERE order_id = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&exists); err != nil {
		zap.L().Error("can't check plate payout existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) ListUnpaidPayouts(ctx context.Context) ([]domain.PlatePayout, error) {
	query := `
        SELECT id, order_id, client_name, amount, created_at, paid_at, paid_by_id
        FROM plate_payouts
        WHERE paid_at IS NULL
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list unpaid payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.PlatePayout
	for rows.Next() {
		var p domain.PlatePayout
		if err := rows.Scan(&p.ID, &p.OrderID, &p.ClientName, &p.Amount, &p.CreatedAt, &p.PaidAt, &p.PaidByID); err != nil {
			zap.L().Error("can't scan plate payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func (r *Repository) MarkPayoutsPaid(ctx context.Context, ids []int, paidByID int, paidAt time.Time) error {
	query := `
        UPDATE plate_payouts
        SET paid_at = $1, paid_by_id = $2
        WHERE id = ANY($3)
    `
	if _, err := r.db.Exec(ctx, query, paidAt, paidByID, ids); err != nil {
		zap.L().Error("can't mark payouts paid", zap.Error(err))
		return err
	}
	return nil
}
