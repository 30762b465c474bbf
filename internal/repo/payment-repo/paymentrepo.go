package paymentrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (order_id, amount, type, employee_id, shift_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, payment.OrderID, payment.Amount, payment.Type, payment.EmployeeID, payment.ShiftID)
	if err := row.Scan(&payment.ID, &payment.CreatedAt); err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByOrderID(ctx context.Context, orderID int) ([]domain.Payment, error) {
	query := `
        SELECT id, order_id, amount, type, employee_id, shift_id, created_at
        FROM payments
        WHERE order_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Type, &p.EmployeeID, &p.ShiftID, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *Repository) SumByOrderAndType(ctx context.Context, orderID int, paymentType domain.PaymentType) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE order_id = $1 AND type = $2
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, orderID, paymentType).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments by order and type", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// SumPaidByOrders returns the total paid per order id, for debt displays.
func (r *Repository) SumPaidByOrders(ctx context.Context, orderIDs []int) (map[int]decimal.Decimal, error) {
	query := `
        SELECT order_id, COALESCE(SUM(amount), 0)
        FROM payments
        WHERE order_id = ANY($1)
        GROUP BY order_id
    `
	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		zap.L().Error("can't sum payments by orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int]decimal.Decimal, len(orderIDs))
	for rows.Next() {
		var orderID int
		var sum decimal.Decimal
		if err := rows.Scan(&orderID, &sum); err != nil {
			zap.L().Error("can't scan payment sum row", zap.Error(err))
			return nil, err
		}
		sums[orderID] = sum
	}
	return sums, rows.Err()
}

// SumByTypeForOrders returns per-order payment sums of one type.
func (r *Repository) SumByTypeForOrders(ctx context.Context, orderIDs []int, paymentType domain.PaymentType) (map[int]decimal.Decimal, error) {
	query := `
        SELECT order_id, COALESCE(SUM(amount), 0)
        FROM payments
        WHERE order_id = ANY($1) AND type = $2
        GROUP BY order_id
    `
	rows, err := r.db.Query(ctx, query, orderIDs, paymentType)
	if err != nil {
		zap.L().Error("can't sum payments by type for orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int]decimal.Decimal, len(orderIDs))
	for rows.Next() {
		var orderID int
		var sum decimal.Decimal
		if err := rows.Scan(&orderID, &sum); err != nil {
			zap.L().Error("can't scan payment sum row", zap.Error(err))
			return nil, err
		}
		sums[orderID] = sum
	}
	return sums, rows.Err()
}

func (r *Repository) SumByShiftID(ctx context.Context, shiftID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE shift_id = $1
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, shiftID).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments by shift", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) TotalsInPeriod(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(DISTINCT order_id)
        FROM payments
        WHERE created_at >= $1 AND created_at < $2
    `
	var totals domain.PeriodTotals
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&totals.Total, &totals.OrdersCount); err != nil {
		zap.L().Error("can't get period totals", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func (r *Repository) SumByTypeInPeriod(ctx context.Context, from, to time.Time, paymentType domain.PaymentType) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE created_at >= $1 AND created_at < $2 AND type = $3
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to, paymentType).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments by type in period", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) EmployeeTotalsInPeriod(ctx context.Context, from, to time.Time) ([]domain.EmployeeTotal, error) {
	query := `
        SELECT employee_id, COUNT(DISTINCT order_id), COALESCE(SUM(amount), 0)
        FROM payments
        WHERE created_at >= $1 AND created_at < $2
        GROUP BY employee_id
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get employee totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.EmployeeTotal
	for rows.Next() {
		var t domain.EmployeeTotal
		if err := rows.Scan(&t.EmployeeID, &t.OrdersCount, &t.Total); err != nil {
			zap.L().Error("can't scan employee total row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
