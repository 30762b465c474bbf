package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockPaymentRepo, *MockCashRepo, *MockWarehouseRepo) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	cashRepo := NewMockCashRepo(ctrl)
	warehouseRepo := NewMockWarehouseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(orderRepo, paymentRepo, cashRepo, warehouseRepo, txManager)
	defer ctrl.Finish()
	return service, orderRepo, paymentRepo, cashRepo, warehouseRepo
}

func plateOrder(status domain.OrderStatus, qty int) *domain.Order {
	return &domain.Order{
		ID:              10,
		PublicID:        "6f1f7d0e-0000-0000-0000-000000000000",
		Status:          status,
		TotalAmount:     decimal.NewFromInt(3500),
		StateDutyAmount: decimal.NewFromInt(2000),
		IncomePavilion1: decimal.NewFromInt(0),
		IncomePavilion2: decimal.NewFromInt(1500),
		NeedPlate:       true,
		FormData: &domain.FormData{
			ClientFIO:     "Иванов Иван",
			PlateQuantity: qty,
			Documents: []domain.OrderDocument{
				{Template: "number.docx", Price: decimal.NewFromInt(1500)},
			},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		form          *domain.FormData
		stateDuty     decimal.Decimal
		incomeP1      decimal.Decimal
		incomeP2      decimal.Decimal
		prepareMock   func()
		wantTotal     string
		wantNeedPlate bool
		expectedError error
	}{
		{
			name: "derives pavilion-1 income and plate flag from documents",
			form: &domain.FormData{
				ClientFIO: "Иванов Иван",
				Documents: []domain.OrderDocument{
					{Template: "mreo.docx", Price: decimal.NewFromInt(500)},
					{Template: "number.docx", Price: decimal.NewFromInt(1500)},
				},
			},
			stateDuty: decimal.NewFromInt(2000),
			incomeP1:  decimal.Zero,
			incomeP2:  decimal.Zero,
			prepareMock: func() {
				orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:     "4000",
			wantNeedPlate: true,
		},
		{
			name:      "no documents keeps passed income",
			form:      &domain.FormData{ClientFIO: "Петров"},
			stateDuty: decimal.NewFromInt(850),
			incomeP1:  decimal.NewFromInt(500),
			incomeP2:  decimal.Zero,
			prepareMock: func() {
				orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:     "1350",
			wantNeedPlate: false,
		},
		{
			name:          "negative amount rejected",
			form:          &domain.FormData{},
			stateDuty:     decimal.NewFromInt(-1),
			incomeP1:      decimal.Zero,
			incomeP2:      decimal.Zero,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			order, err := service.CreateOrder(context.Background(), tt.form, tt.stateDuty, tt.incomeP1, tt.incomeP2, "registration", 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, order.TotalAmount.String())
			assert.Equal(t, tt.wantNeedPlate, order.NeedPlate)
			assert.Equal(t, domain.OrderStatusAwaitingPayment, order.Status)
			assert.NotEmpty(t, order.PublicID)
		})
	}
}

// A fresh intake must be payable immediately: the cash desk registers the
// form and takes the money in one visit, with no status change in between.
func TestCreateThenPay(t *testing.T) {
	service, orderRepo, paymentRepo, cashRepo, _ := NewMock(t)

	form := &domain.FormData{
		ClientFIO: "Иванов Иван",
		Documents: []domain.OrderDocument{
			{Template: "mreo.docx", Price: decimal.NewFromInt(500)},
		},
	}
	var created *domain.Order
	orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order *domain.Order) error {
			order.ID = 21
			created = order
			return nil
		})

	order, err := service.CreateOrder(context.Background(), form, decimal.NewFromInt(50), decimal.Zero, decimal.Zero, "registration", 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAwaitingPayment, order.Status)

	orderRepo.EXPECT().FindByID(gomock.Any(), 21).Return(created, nil)
	cashRepo.EXPECT().FindOpenShift(gomock.Any(), 1).Return(nil, nil).Times(2)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	orderRepo.EXPECT().UpdateStatus(gomock.Any(), 21, domain.OrderStatusPaid).Return(nil)
	cashRepo.EXPECT().CreateCashRow(gomock.Any(), gomock.Any()).Return(nil)
	orderRepo.EXPECT().SaveFormHistory(gomock.Any(), 21, gomock.Any()).Return(nil)

	paid, err := service.Pay(context.Background(), 21, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, paid.Status)
}

func TestPay(t *testing.T) {
	service, orderRepo, paymentRepo, cashRepo, _ := NewMock(t)
	shift1 := &domain.CashShift{ID: 7, Pavilion: 1, Status: domain.ShiftStatusOpen}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "two positive amounts post two payments and one cash row",
			prepareMock: func() {
				order := &domain.Order{
					ID:              1,
					Status:          domain.OrderStatusAwaitingPayment,
					TotalAmount:     decimal.NewFromInt(150),
					StateDutyAmount: decimal.NewFromInt(50),
					IncomePavilion1: decimal.NewFromInt(100),
					IncomePavilion2: decimal.Zero,
					FormData:        &domain.FormData{ClientFIO: "Сидоров"},
				}
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
				cashRepo.EXPECT().FindOpenShift(gomock.Any(), 1).Return(shift1, nil).Times(2)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) error {
						assert.Equal(t, domain.PaymentTypeStateDuty, p.Type)
						assert.Equal(t, "50", p.Amount.String())
						assert.Equal(t, 7, *p.ShiftID)
						return nil
					})
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) error {
						assert.Equal(t, domain.PaymentTypeIncomePavilion1, p.Type)
						assert.Equal(t, "100", p.Amount.String())
						return nil
					})
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.OrderStatusPaid).Return(nil)
				cashRepo.EXPECT().CreateCashRow(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, row *domain.CashRow) error {
						assert.Equal(t, "Сидоров", row.ClientName)
						assert.Equal(t, "150", row.Total.String())
						assert.Equal(t, "50", row.StateDuty.String())
						assert.True(t, row.Insurance.IsZero())
						return nil
					})
				orderRepo.EXPECT().SaveFormHistory(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
		},
		{
			name: "no open shift leaves payment shift nil",
			prepareMock: func() {
				order := &domain.Order{
					ID:              2,
					Status:          domain.OrderStatusAwaitingPayment,
					TotalAmount:     decimal.NewFromInt(50),
					StateDutyAmount: decimal.NewFromInt(50),
					FormData:        &domain.FormData{},
				}
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
				cashRepo.EXPECT().FindOpenShift(gomock.Any(), 1).Return(nil, nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) error {
						assert.Nil(t, p.ShiftID)
						return nil
					})
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), 2, domain.OrderStatusPaid).Return(nil)
				cashRepo.EXPECT().CreateCashRow(gomock.Any(), gomock.Any()).Return(nil)
				orderRepo.EXPECT().SaveFormHistory(gomock.Any(), 2, gomock.Any()).Return(nil)
			},
		},
		{
			name: "terminal order rejected",
			prepareMock: func() {
				order := &domain.Order{ID: 3, Status: domain.OrderStatusCompleted}
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "missing order",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			order, err := service.Pay(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusPaid, order.Status)
			}
		})
	}
}

func TestPayDerivesCashRowColumns(t *testing.T) {
	service, orderRepo, paymentRepo, cashRepo, _ := NewMock(t)

	order := &domain.Order{
		ID:              4,
		Status:          domain.OrderStatusAwaitingPayment,
		TotalAmount:     decimal.NewFromInt(4500),
		StateDutyAmount: decimal.NewFromInt(2000),
		IncomePavilion1: decimal.NewFromInt(2500),
		IncomePavilion2: decimal.Zero,
		NeedPlate:       true,
		FormData: &domain.FormData{
			ClientLegalName: "ООО Транзит",
			Documents: []domain.OrderDocument{
				{Template: "mreo.docx", Price: decimal.NewFromInt(500)},
				{Template: "dkp.docx", Price: decimal.NewFromInt(500)},
				{Template: "NUMBER.DOCX", Price: decimal.NewFromInt(1500)},
			},
		},
	}
	orderRepo.EXPECT().FindByID(gomock.Any(), 4).Return(order, nil)
	cashRepo.EXPECT().FindOpenShift(gomock.Any(), 1).Return(nil, nil).Times(2)
	paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	orderRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.OrderStatusPaid).Return(nil)
	cashRepo.EXPECT().CreateCashRow(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *domain.CashRow) error {
			assert.Equal(t, "ООО Транзит", row.ClientName)
			assert.Equal(t, "500", row.Application.String())
			assert.Equal(t, "500", row.DKP.String())
			assert.Equal(t, "1500", row.Plates.String())
			assert.Equal(t, "2000", row.StateDuty.String())
			assert.Equal(t, "4500", row.Total.String())
			return nil
		})
	orderRepo.EXPECT().SaveFormHistory(gomock.Any(), 4, gomock.Any()).Return(nil)

	_, err := service.Pay(context.Background(), 4, 5)
	assert.NoError(t, err)
}

func TestPayExtra(t *testing.T) {
	service, orderRepo, paymentRepo, cashRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "posts surcharge into pavilion-2 shift",
			amount: decimal.NewFromInt(700),
			prepareMock: func() {
				order := plateOrder(domain.OrderStatusPaid, 1)
				shift2 := &domain.CashShift{ID: 9, Pavilion: 2, Status: domain.ShiftStatusOpen}
				orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
				cashRepo.EXPECT().FindOpenShift(gomock.Any(), 2).Return(shift2, nil)
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) error {
						assert.Equal(t, domain.PaymentTypeIncomePavilion2, p.Type)
						assert.Equal(t, "700", p.Amount.String())
						assert.Equal(t, 9, *p.ShiftID)
						return nil
					})
				cashRepo.EXPECT().CreateCashRow(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, row *domain.CashRow) error {
						assert.Equal(t, "700", row.Plates.String())
						assert.Equal(t, "700", row.Total.String())
						assert.True(t, row.Application.IsZero())
						assert.True(t, row.StateDuty.IsZero())
						return nil
					})
			},
		},
		{
			name:          "zero amount rejected",
			amount:        decimal.Zero,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "order without plates rejected",
			amount: decimal.NewFromInt(700),
			prepareMock: func() {
				order := &domain.Order{ID: 10, Status: domain.OrderStatusPaid, NeedPlate: false}
				orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
			},
			expectedError: ErrNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			err := service.PayExtra(context.Background(), 10, tt.amount, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatusReserve(t *testing.T) {
	service, orderRepo, _, _, warehouseRepo := NewMock(t)

	tests := []struct {
		name          string
		stock         int
		reserved      int
		qty           int
		expectedError error
	}{
		{name: "enough blanks", stock: 5, reserved: 0, qty: 3},
		{name: "reserved counts against availability", stock: 5, reserved: 3, qty: 3, expectedError: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := plateOrder(domain.OrderStatusPaid, tt.qty)
			orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
			warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: tt.stock}, nil)
			warehouseRepo.EXPECT().ReservedTotal(gomock.Any()).Return(tt.reserved, nil)
			if tt.expectedError == nil {
				warehouseRepo.EXPECT().CreateReservation(gomock.Any(), 10, tt.qty).Return(nil)
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusPlateInProgress).Return(nil)
			}

			updated, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusPlateInProgress, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusPlateInProgress, updated.Status)
			}
		})
	}
}

func TestUpdateStatusComplete(t *testing.T) {
	service, orderRepo, paymentRepo, cashRepo, warehouseRepo := NewMock(t)

	t.Run("consumes stock and registers payout", func(t *testing.T) {
		order := plateOrder(domain.OrderStatusPlateReady, 2)
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 5}, nil)
		warehouseRepo.EXPECT().DeleteReservationsByOrderID(gomock.Any(), 10).Return(nil)
		warehouseRepo.EXPECT().UpdateStockQuantity(gomock.Any(), 1, 3).Return(nil)
		cashRepo.EXPECT().PayoutExists(gomock.Any(), 10).Return(false, nil)
		paymentRepo.EXPECT().SumByOrderAndType(gomock.Any(), 10, domain.PaymentTypeIncomePavilion2).Return(decimal.NewFromInt(700), nil)
		cashRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payout *domain.PlatePayout) error {
				assert.Equal(t, 10, payout.OrderID)
				assert.Equal(t, "2200", payout.Amount.String())
				assert.Equal(t, "Иванов Иван", payout.ClientName)
				return nil
			})
		orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusCompleted).Return(nil)

		_, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusCompleted, 5)
		assert.NoError(t, err)
	})

	t.Run("consumption without prior reservation still decrements", func(t *testing.T) {
		order := plateOrder(domain.OrderStatusPaid, 2)
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 4}, nil)
		warehouseRepo.EXPECT().DeleteReservationsByOrderID(gomock.Any(), 10).Return(nil)
		warehouseRepo.EXPECT().UpdateStockQuantity(gomock.Any(), 1, 2).Return(nil)
		cashRepo.EXPECT().PayoutExists(gomock.Any(), 10).Return(false, nil)
		paymentRepo.EXPECT().SumByOrderAndType(gomock.Any(), 10, domain.PaymentTypeIncomePavilion2).Return(decimal.Zero, nil)
		cashRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil)
		orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusCompleted).Return(nil)

		_, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusCompleted, 5)
		assert.NoError(t, err)
	})

	t.Run("payout registration is idempotent", func(t *testing.T) {
		order := plateOrder(domain.OrderStatusPlateReady, 1)
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		warehouseRepo.EXPECT().GetStockForUpdate(gomock.Any()).Return(&domain.PlateStock{ID: 1, Quantity: 5}, nil)
		warehouseRepo.EXPECT().DeleteReservationsByOrderID(gomock.Any(), 10).Return(nil)
		warehouseRepo.EXPECT().UpdateStockQuantity(gomock.Any(), 1, 4).Return(nil)
		cashRepo.EXPECT().PayoutExists(gomock.Any(), 10).Return(true, nil)
		orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusCompleted).Return(nil)

		_, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusCompleted, 5)
		assert.NoError(t, err)
	})
}

func TestUpdateStatusProblem(t *testing.T) {
	service, orderRepo, _, _, warehouseRepo := NewMock(t)

	order := plateOrder(domain.OrderStatusPlateInProgress, 2)
	orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
	warehouseRepo.EXPECT().DeleteReservationsByOrderID(gomock.Any(), 10).Return(nil)
	orderRepo.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderStatusProblem).Return(nil)

	updated, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusProblem, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProblem, updated.Status)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	service, orderRepo, _, _, _ := NewMock(t)

	order := &domain.Order{ID: 10, Status: domain.OrderStatusProblem}
	orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

	_, err := service.UpdateStatus(context.Background(), 10, domain.OrderStatusCompleted, 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGetOrderPayments(t *testing.T) {
	service, orderRepo, paymentRepo, _, _ := NewMock(t)

	t.Run("debt recomputed from payments", func(t *testing.T) {
		order := plateOrder(domain.OrderStatusPaid, 1)
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		paymentRepo.EXPECT().ListByOrderID(gomock.Any(), 10).Return([]domain.Payment{
			{OrderID: 10, Amount: decimal.NewFromInt(2000), Type: domain.PaymentTypeStateDuty},
		}, nil)

		payments, debt, err := service.GetOrderPayments(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.Equal(t, "1500", debt.String())
	})

	t.Run("overpaid order has zero debt", func(t *testing.T) {
		order := plateOrder(domain.OrderStatusPaid, 1)
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		paymentRepo.EXPECT().ListByOrderID(gomock.Any(), 10).Return([]domain.Payment{
			{OrderID: 10, Amount: decimal.NewFromInt(5000), Type: domain.PaymentTypeStateDuty},
		}, nil)

		_, debt, err := service.GetOrderPayments(context.Background(), 10)
		assert.NoError(t, err)
		assert.True(t, debt.IsZero())
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		orderRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, errors.New("db error"))
		_, _, err := service.GetOrderPayments(context.Background(), 10)
		assert.Error(t, err)
	})
}
