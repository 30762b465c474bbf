package warehouseservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

type WarehouseRepo interface {
	GetStock(ctx context.Context) (*domain.PlateStock, error)
	GetStockForUpdate(ctx context.Context) (*domain.PlateStock, error)
	UpdateStockQuantity(ctx context.Context, id, quantity int) error
	ReservedTotal(ctx context.Context) (int, error)
	CreateDefect(ctx context.Context) error
	DefectCountSince(ctx context.Context, since time.Time) (int, error)
}

type Service struct {
	warehouseRepo WarehouseRepo
	txManager     pg.TXManager
}

func New(warehouseRepo WarehouseRepo, txManager pg.TXManager) *Service {
	return &Service{
		warehouseRepo: warehouseRepo,
		txManager:     txManager,
	}
}

var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient plate stock")
)

// StockState is the warehouse counter plus its derived figures.
type StockState struct {
	Quantity  int
	Reserved  int
	Available int
	UpdatedAt time.Time
}

// Stock returns blanks on hand, blanks earmarked for in-progress orders and
// what is left to promise.
func (s *Service) Stock(ctx context.Context) (*StockState, error) {
	stock, err := s.warehouseRepo.GetStock(ctx)
	if err != nil {
		zap.L().Error("failed to get stock", zap.Error(err))
		return nil, err
	}
	reserved, err := s.warehouseRepo.ReservedTotal(ctx)
	if err != nil {
		zap.L().Error("failed to sum reservations", zap.Error(err))
		return nil, err
	}
	available := stock.Quantity - reserved
	if available < 0 {
		available = 0
	}
	return &StockState{
		Quantity:  stock.Quantity,
		Reserved:  reserved,
		Available: available,
		UpdatedAt: stock.UpdatedAt,
	}, nil
}

// AddStock registers a delivery of blanks.
func (s *Service) AddStock(ctx context.Context, quantity int) (*StockState, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		stock, err := s.warehouseRepo.GetStockForUpdate(ctx)
		if err != nil {
			return err
		}
		return s.warehouseRepo.UpdateStockQuantity(ctx, stock.ID, stock.Quantity+quantity)
	})
	if err != nil {
		zap.L().Error("failed to add stock", zap.Int("quantity", quantity), zap.Error(err))
		return nil, err
	}
	zap.L().Info("stock replenished", zap.Int("quantity", quantity))
	return s.Stock(ctx)
}

// WriteOffDefect removes one spoiled blank from stock and records the
// write-off for the monthly counter.
func (s *Service) WriteOffDefect(ctx context.Context) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		stock, err := s.warehouseRepo.GetStockForUpdate(ctx)
		if err != nil {
			return err
		}
		if stock.Quantity < 1 {
			return ErrInsufficientStock
		}
		if err := s.warehouseRepo.UpdateStockQuantity(ctx, stock.ID, stock.Quantity-1); err != nil {
			return err
		}
		return s.warehouseRepo.CreateDefect(ctx)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientStock) {
			zap.L().Error("defect write-off failed", zap.Error(err))
		}
		return err
	}
	return nil
}

// MonthDefectCount counts write-offs since the first of the current month.
func (s *Service) MonthDefectCount(ctx context.Context) (int, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	count, err := s.warehouseRepo.DefectCountSince(ctx, monthStart)
	if err != nil {
		zap.L().Error("failed to count defects", zap.Error(err))
		return 0, err
	}
	return count, nil
}
