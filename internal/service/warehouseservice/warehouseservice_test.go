package warehouseservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockWarehouseRepo) {
	ctrl := gomock.NewController(t)
	warehouseRepo := NewMockWarehouseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(warehouseRepo, txManager)
	defer ctrl.Finish()
	return service, warehouseRepo
}

func TestStock(t *testing.T) {
	service, warehouseRepo := NewMock(t)

	tests := []struct {
		name          string
		quantity      int
		reserved      int
		wantAvailable int
	}{
		{name: "free stock", quantity: 10, reserved: 3, wantAvailable: 7},
		{name: "fully reserved", quantity: 4, reserved: 4, wantAvailable: 0},
		{name: "over-reserved clamps to zero", quantity: 2, reserved: 5, wantAvailable: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warehouseRepo.EXPECT().GetStock(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: tt.quantity}, nil)
			warehouseRepo.EXPECT().ReservedTotal(gomock.Any()).Return(tt.reserved, nil)

			state, err := service.Stock(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.quantity, state.Quantity)
			assert.Equal(t, tt.reserved, state.Reserved)
			assert.Equal(t, tt.wantAvailable, state.Available)
		})
	}
}

func TestAddStock(t *testing.T) {
	service, warehouseRepo := NewMock(t)

	t.Run("adds to the counter", func(t *testing.T) {
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 5}, nil)
		warehouseRepo.EXPECT().UpdateStockQuantity(gomock.Any(), 1, 25).Return(nil)
		warehouseRepo.EXPECT().GetStock(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 25}, nil)
		warehouseRepo.EXPECT().ReservedTotal(gomock.Any()).Return(0, nil)

		state, err := service.AddStock(context.Background(), 20)
		assert.NoError(t, err)
		assert.Equal(t, 25, state.Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := service.AddStock(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestWriteOffDefect(t *testing.T) {
	service, warehouseRepo := NewMock(t)

	t.Run("decrements stock and records the defect", func(t *testing.T) {
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 3}, nil)
		warehouseRepo.EXPECT().UpdateStockQuantity(gomock.Any(), 1, 2).Return(nil)
		warehouseRepo.EXPECT().CreateDefect(gomock.Any()).Return(nil)

		assert.NoError(t, service.WriteOffDefect(context.Background()))
	})

	t.Run("empty shelf", func(t *testing.T) {
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 0}, nil)

		err := service.WriteOffDefect(context.Background())
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(nil, errors.New("db error"))

		assert.Error(t, service.WriteOffDefect(context.Background()))
	})
}

func TestMonthDefectCount(t *testing.T) {
	service, warehouseRepo := NewMock(t)

	warehouseRepo.EXPECT().DefectCountSince(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, since time.Time) (int, error) {
			assert.Equal(t, 1, since.Day())
			assert.Equal(t, 0, since.Hour())
			return 4, nil
		})

	count, err := service.MonthDefectCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}
