package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const orderColumns = `id, public_id, status, total_amount, state_duty_amount, income_pavilion1, income_pavilion2, need_plate, service_type, form_data, employee_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.PublicID, &order.Status,
		&order.TotalAmount, &order.StateDutyAmount, &order.IncomePavilion1, &order.IncomePavilion2,
		&order.NeedPlate, &order.ServiceType, &order.FormData, &order.EmployeeID,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (public_id, status, total_amount, state_duty_amount, income_pavilion1, income_pavilion2, need_plate, service_type, form_data, employee_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		order.PublicID, order.Status,
		order.TotalAmount, order.StateDutyAmount, order.IncomePavilion1, order.IncomePavilion2,
		order.NeedPlate, order.ServiceType, order.FormData, order.EmployeeID,
	)
	if err := row.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE ($1::varchar IS NULL OR status = $1)
          AND ($2::boolean IS NULL OR need_plate = $2)
        ORDER BY created_at DESC
        LIMIT $3
    `
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, query, filter.Status, filter.NeedPlate, limit)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// FindForPlateList returns plate orders the pavilion-2 board shows: paid or
// in manufacturing, newest first.
func (r *Repository) FindForPlateList(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE need_plate = TRUE
          AND status IN ('PAID', 'PLATE_IN_PROGRESS', 'PLATE_READY')
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list plate orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveFormHistory(ctx context.Context, orderID int, formData *domain.FormData) error {
	query := `
        INSERT INTO form_history (order_id, form_data)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, orderID, formData); err != nil {
		zap.L().Error("can't save form history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListFormHistory(ctx context.Context, limit int) ([]domain.FormHistory, error) {
	query := `
        SELECT id, order_id, form_data, created_at
        FROM form_history
        ORDER BY id DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list form history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FormHistory
	for rows.Next() {
		var entry domain.FormHistory
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.FormData, &entry.CreatedAt); err != nil {
			zap.L().Error("can't scan form history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
