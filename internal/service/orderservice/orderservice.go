package orderservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
	"github.com/snekrasov/regcenter/internal/pricelist"
)

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	FindForPlateList(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error
	SaveFormHistory(ctx context.Context, orderID int, formData *domain.FormData) error
	ListFormHistory(ctx context.Context, limit int) ([]domain.FormHistory, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByOrderID(ctx context.Context, orderID int) ([]domain.Payment, error)
	SumByOrderAndType(ctx context.Context, orderID int, paymentType domain.PaymentType) (decimal.Decimal, error)
	SumPaidByOrders(ctx context.Context, orderIDs []int) (map[int]decimal.Decimal, error)
	SumByTypeForOrders(ctx context.Context, orderIDs []int, paymentType domain.PaymentType) (map[int]decimal.Decimal, error)
}

type CashRepo interface {
	FindOpenShift(ctx context.Context, pavilion int) (*domain.CashShift, error)
	CreateCashRow(ctx context.Context, row *domain.CashRow) error
	CreatePayout(ctx context.Context, payout *domain.PlatePayout) error
	PayoutExists(ctx context.Context, orderID int) (bool, error)
}

type WarehouseRepo interface {
	GetStockForUpdate(ctx context.Context) (*domain.PlateStock, error)
	UpdateStockQuantity(ctx context.Context, id, quantity int) error
	ReservedTotal(ctx context.Context) (int, error)
	CreateReservation(ctx context.Context, orderID, quantity int) error
	DeleteReservationsByOrderID(ctx context.Context, orderID int) error
}

type Service struct {
	orderRepo     OrderRepo
	paymentRepo   PaymentRepo
	cashRepo      CashRepo
	warehouseRepo WarehouseRepo
	txManager     pg.TXManager
}

func New(orderRepo OrderRepo, paymentRepo PaymentRepo, cashRepo CashRepo, warehouseRepo WarehouseRepo, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		cashRepo:      cashRepo,
		warehouseRepo: warehouseRepo,
		txManager:     txManager,
	}
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNotApplicable     = errors.New("order does not require plates")
	ErrInsufficientStock = errors.New("insufficient plate stock")
)

// CreateOrder registers a new intake form. Pavilion-1 income and the plate
// flag are derived from the priced document list; the stored total is fixed
// at creation time and later pavilion-2 surcharges do not update it. Orders
// start in AWAITING_PAYMENT so the cash desk can take money right away.
func (s *Service) CreateOrder(ctx context.Context, form *domain.FormData, stateDuty, incomeP1, incomeP2 decimal.Decimal, serviceType string, employeeID int) (*domain.Order, error) {
	needPlate := false
	if form != nil && len(form.Documents) > 0 {
		docsTotal := decimal.Zero
		for _, doc := range form.Documents {
			docsTotal = docsTotal.Add(doc.Price)
			if pricelist.IsPlate(doc.Template) {
				needPlate = true
			}
		}
		incomeP1 = docsTotal
	}
	if stateDuty.IsNegative() || incomeP1.IsNegative() || incomeP2.IsNegative() {
		return nil, ErrInvalidAmount
	}

	order := &domain.Order{
		PublicID:        uuid.NewString(),
		Status:          domain.OrderStatusAwaitingPayment,
		TotalAmount:     stateDuty.Add(incomeP1).Add(incomeP2),
		StateDutyAmount: stateDuty,
		IncomePavilion1: incomeP1,
		IncomePavilion2: incomeP2,
		NeedPlate:       needPlate,
		ServiceType:     serviceType,
		FormData:        form,
		EmployeeID:      &employeeID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// PlateList returns the pavilion-2 work queue: paid plate orders that have
// not been completed yet.
func (s *Service) PlateList(ctx context.Context, limit int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindForPlateList(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list plate orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// GetOrderPayments returns the payment postings of an order together with
// the outstanding debt. Debt is recomputed from Payment sums, not from the
// stored total, because pavilion-2 surcharges never update the order row.
func (s *Service) GetOrderPayments(ctx context.Context, orderID int) ([]domain.Payment, decimal.Decimal, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if order == nil {
		return nil, decimal.Zero, ErrOrderNotFound
	}
	payments, err := s.paymentRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to list payments", zap.Error(err))
		return nil, decimal.Zero, err
	}
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	debt := order.TotalAmount.Sub(paid)
	if debt.IsNegative() {
		debt = decimal.Zero
	}
	return payments, debt, nil
}

// Pay marks the order paid and posts all its money in one transaction: one
// Payment per positive amount field, the derived pavilion-1 cash row, and a
// form-history snapshot.
func (s *Service) Pay(ctx context.Context, orderID, employeeID int) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransition(domain.OrderStatusPaid) {
			return ErrInvalidTransition
		}

		postings := []struct {
			amount      decimal.Decimal
			paymentType domain.PaymentType
			pavilion    int
		}{
			{order.StateDutyAmount, domain.PaymentTypeStateDuty, 1},
			{order.IncomePavilion1, domain.PaymentTypeIncomePavilion1, 1},
			{order.IncomePavilion2, domain.PaymentTypeIncomePavilion2, 2},
		}
		for _, p := range postings {
			if !p.amount.IsPositive() {
				continue
			}
			shiftID, err := s.openShiftID(ctx, p.pavilion)
			if err != nil {
				return err
			}
			payment := &domain.Payment{
				OrderID:    order.ID,
				Amount:     p.amount,
				Type:       p.paymentType,
				EmployeeID: &employeeID,
				ShiftID:    shiftID,
			}
			if err := s.paymentRepo.Create(ctx, payment); err != nil {
				return err
			}
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusPaid); err != nil {
			return err
		}
		order.Status = domain.OrderStatusPaid

		if err := s.cashRepo.CreateCashRow(ctx, deriveCashRow(order)); err != nil {
			return err
		}
		return s.orderRepo.SaveFormHistory(ctx, order.ID, order.FormData)
	})
	if err != nil {
		zap.L().Error("pay failed", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("order paid", zap.Int("order_id", orderID), zap.String("total", order.TotalAmount.String()))
	return order, nil
}

// PayExtra posts a pavilion-2 plate surcharge against an already-registered
// plate order. The stored order total is left untouched.
func (s *Service) PayExtra(ctx context.Context, orderID int, amount decimal.Decimal, employeeID int) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.NeedPlate {
			return ErrNotApplicable
		}

		shiftID, err := s.openShiftID(ctx, 2)
		if err != nil {
			return err
		}
		payment := &domain.Payment{
			OrderID:    order.ID,
			Amount:     amount,
			Type:       domain.PaymentTypeIncomePavilion2,
			EmployeeID: &employeeID,
			ShiftID:    shiftID,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		return s.cashRepo.CreateCashRow(ctx, &domain.CashRow{
			ClientName: order.FormData.ClientName(),
			Plates:     amount,
			Total:      amount,
		})
	})
	if err != nil {
		zap.L().Error("pay-extra failed", zap.Int("order_id", orderID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus applies one transition of the order state machine together
// with its warehouse side effects, all in one transaction.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, next domain.OrderStatus, employeeID int) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransition(next) {
			return ErrInvalidTransition
		}

		qty := 0
		if order.NeedPlate {
			qty = order.FormData.PlateQty()
		}

		switch {
		case order.Status == domain.OrderStatusPaid && next == domain.OrderStatusPlateInProgress:
			if qty > 0 {
				if err := s.reservePlates(ctx, order.ID, qty); err != nil {
					return err
				}
			}
		case next == domain.OrderStatusCompleted:
			if qty > 0 {
				if err := s.consumePlates(ctx, order.ID, qty); err != nil {
					return err
				}
			}
			if order.NeedPlate {
				if err := s.registerPayout(ctx, order); err != nil {
					return err
				}
			}
		case next == domain.OrderStatusProblem:
			if order.NeedPlate {
				if err := s.warehouseRepo.DeleteReservationsByOrderID(ctx, order.ID); err != nil {
					return err
				}
			}
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
			return err
		}
		order.Status = next
		return nil
	})
	if err != nil {
		zap.L().Error("status update failed",
			zap.Int("order_id", orderID), zap.String("status", string(next)), zap.Error(err))
		return nil, err
	}
	zap.L().Info("order status updated",
		zap.Int("order_id", orderID), zap.String("status", string(next)), zap.Int("employee_id", employeeID))
	return order, nil
}

// FormHistory returns past form snapshots, newest first.
func (s *Service) FormHistory(ctx context.Context, limit int) ([]domain.FormHistory, error) {
	history, err := s.orderRepo.ListFormHistory(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list form history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (s *Service) openShiftID(ctx context.Context, pavilion int) (*int, error) {
	shift, err := s.cashRepo.FindOpenShift(ctx, pavilion)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, nil
	}
	return &shift.ID, nil
}

// reservePlates earmarks blanks for an order entering manufacturing. The
// stock row is locked for the availability check so two concurrent
// reservations cannot oversell.
func (s *Service) reservePlates(ctx context.Context, orderID, qty int) error {
	stock, err := s.warehouseRepo.GetStockForUpdate(ctx)
	if err != nil {
		return err
	}
	reserved, err := s.warehouseRepo.ReservedTotal(ctx)
	if err != nil {
		return err
	}
	if stock.Quantity-reserved < qty {
		return ErrInsufficientStock
	}
	return s.warehouseRepo.CreateReservation(ctx, orderID, qty)
}

// consumePlates removes the order's reservations and decrements stock.
// Consumption does not require a prior reservation: an order paid straight
// to completion still takes its blanks off the shelf.
func (s *Service) consumePlates(ctx context.Context, orderID, qty int) error {
	stock, err := s.warehouseRepo.GetStockForUpdate(ctx)
	if err != nil {
		return err
	}
	if err := s.warehouseRepo.DeleteReservationsByOrderID(ctx, orderID); err != nil {
		return err
	}
	return s.warehouseRepo.UpdateStockQuantity(ctx, stock.ID, stock.Quantity-qty)
}

// registerPayout records the debt of the pavilion-1 register to the plate
// operator. Guarded by an existence check (plus a unique index on order_id)
// so a retried completion cannot double-register.
func (s *Service) registerPayout(ctx context.Context, order *domain.Order) error {
	exists, err := s.cashRepo.PayoutExists(ctx, order.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	amount := decimal.Zero
	if order.FormData != nil {
		for _, doc := range order.FormData.Documents {
			if pricelist.IsPlate(doc.Template) {
				amount = amount.Add(doc.Price)
			}
		}
	}
	extra, err := s.paymentRepo.SumByOrderAndType(ctx, order.ID, domain.PaymentTypeIncomePavilion2)
	if err != nil {
		return err
	}
	amount = amount.Add(extra)
	if !amount.IsPositive() {
		return nil
	}

	return s.cashRepo.CreatePayout(ctx, &domain.PlatePayout{
		OrderID:    order.ID,
		ClientName: order.FormData.ClientName(),
		Amount:     amount,
	})
}

// deriveCashRow builds the pavilion-1 ledger line for a freshly paid order.
// Document prices are split by template class; the order's pavilion-2 income
// is folded into the plates column.
func deriveCashRow(order *domain.Order) *domain.CashRow {
	row := &domain.CashRow{
		ClientName: order.FormData.ClientName(),
		StateDuty:  order.StateDutyAmount,
		Total:      order.TotalAmount,
	}
	if order.FormData != nil {
		for _, doc := range order.FormData.Documents {
			switch {
			case pricelist.IsDKP(doc.Template):
				row.DKP = row.DKP.Add(doc.Price)
			case pricelist.IsPlate(doc.Template):
				row.Plates = row.Plates.Add(doc.Price)
			default:
				row.Application = row.Application.Add(doc.Price)
			}
		}
	}
	row.Plates = row.Plates.Add(order.IncomePavilion2)
	return row
}
