package warehouserepo

import (
	"context"
	"errors"
	"time"

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

// GetStock returns the stock singleton, creating it with quantity 0 on first
// access.
func (r *Repository) GetStock(ctx context.Context) (*domain.PlateStock, error) {
	return r.getStock(ctx, false)
}

// GetStockForUpdate is GetStock with a row lock; callers mutating quantity or
// reservations must use it inside a transaction so concurrent reserve and
// write-off operations serialize on the singleton.
func (r *Repository) GetStockForUpdate(ctx context.Context) (*domain.PlateStock, error) {
	return r.getStock(ctx, true)
}

func (r *Repository) getStock(ctx context.Context, forUpdate bool) (*domain.PlateStock, error) {
	query := `
        SELECT id, quantity, updated_at
        FROM plate_stock
        ORDER BY id
        LIMIT 1
    `
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var stock domain.PlateStock
	err := r.db.QueryRow(ctx, query).Scan(&stock.ID, &stock.Quantity, &stock.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.createStock(ctx)
	}
	if err != nil {
		zap.L().Error("can't get plate stock", zap.Error(err))
		return nil, err
	}
	return &stock, nil
}

func (r *Repository) createStock(ctx context.Context) (*domain.PlateStock, error) {
	query := `
        INSERT INTO plate_stock (quantity)
        VALUES (0)
        RETURNING id, quantity, updated_at
    `
	var stock domain.PlateStock
	if err := r.db.QueryRow(ctx, query).Scan(&stock.ID, &stock.Quantity, &stock.UpdatedAt); err != nil {
		zap.L().Error("can't create plate stock", zap.Error(err))
		return nil, err
	}
	return &stock, nil
}

func (r *Repository) UpdateStockQuantity(ctx context.Context, id, quantity int) error {
	query := `
        UPDATE plate_stock
        SET quantity = $1, updated_at = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, quantity, id); err != nil {
		zap.L().Error("can't update plate stock", zap.Error(err))
		return err
	}
	return nil
}

// ReservedTotal is the sum of all outstanding reservations.
func (r *Repository) ReservedTotal(ctx context.Context) (int, error) {
	query := `
        SELECT COALESCE(SUM(quantity), 0)
        FROM plate_reservations
    `
	var total int
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't get reserved total", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) CreateReservation(ctx context.Context, orderID, quantity int) error {
	query := `
        INSERT INTO plate_reservations (order_id, quantity)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, orderID, quantity); err != nil {
		zap.L().Error("can't create plate reservation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteReservationsByOrderID(ctx context.Context, orderID int) error {
	query := `
        DELETE FROM plate_reservations
        WHERE order_id = $1
    `
	if _, err := r.db.Exec(ctx, query, orderID); err != nil {
		zap.L().Error("can't delete plate reservations", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateDefect(ctx context.Context) error {
	query := `
        INSERT INTO plate_defects (quantity)
        VALUES (1)
    `
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("can't create plate defect", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DefectCountSince(ctx context.Context, since time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(quantity), 0)
        FROM plate_defects
        WHERE created_at >= $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		zap.L().Error("can't count plate defects", zap.Error(err))
		return 0, err
	}
	return count, nil
}
