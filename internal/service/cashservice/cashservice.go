package cashservice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/pg"
)

type CashRepo interface {
	FindOpenShift(ctx context.Context, pavilion int) (*domain.CashShift, error)
	FindShiftByID(ctx context.Context, id int) (*domain.CashShift, error)
	CreateShift(ctx context.Context, shift *domain.CashShift) error
	CloseShift(ctx context.Context, id int, closingBalance decimal.Decimal, closedByID int, closedAt time.Time) error
	ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.CashShift, error)
	CreateCashRow(ctx context.Context, row *domain.CashRow) error
	FindCashRowByID(ctx context.Context, id int) (*domain.CashRow, error)
	ListCashRows(ctx context.Context, limit int) ([]domain.CashRow, error)
	UpdateCashRow(ctx context.Context, row *domain.CashRow) error
	DeleteCashRow(ctx context.Context, id int) error
	CreatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error
	FindPlateCashRowByID(ctx context.Context, id int) (*domain.PlateCashRow, error)
	ListPlateCashRows(ctx context.Context, limit int) ([]domain.PlateCashRow, error)
	UpdatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error
	DeletePlateCashRow(ctx context.Context, id int) error
	ListUnpaidPayouts(ctx context.Context) ([]domain.PlatePayout, error)
	MarkPayoutsPaid(ctx context.Context, ids []int, paidByID int, paidAt time.Time) error
}

type PaymentRepo interface {
	SumByShiftID(ctx context.Context, shiftID int) (decimal.Decimal, error)
}

type Service struct {
	cashRepo    CashRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
}

func New(cashRepo CashRepo, paymentRepo PaymentRepo, txManager pg.TXManager) *Service {
	return &Service{
		cashRepo:    cashRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

var (
	ErrShiftAlreadyOpen   = errors.New("shift already open for pavilion")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftAlreadyClosed = errors.New("shift already closed")
	ErrRowNotFound        = errors.New("cash row not found")
	ErrNothingToPay       = errors.New("nothing to pay out")
)

// PayoutClientName labels the settlement line in the pavilion-1 register.
const PayoutClientName = "Номера — выдача"

// ShiftSummary is an open shift together with the running total of payments
// posted into it.
type ShiftSummary struct {
	Shift    *domain.CashShift
	Payments decimal.Decimal
}

// OpenShift opens a new accounting period for the pavilion. The
// check-then-insert runs in a transaction and a partial unique index backs
// it up, so two concurrent opens cannot both succeed.
func (s *Service) OpenShift(ctx context.Context, pavilion, employeeID int, openingBalance decimal.Decimal) (*domain.CashShift, error) {
	shift := &domain.CashShift{
		Pavilion:       pavilion,
		OpenedByID:     employeeID,
		OpenedAt:       time.Now(),
		OpeningBalance: openingBalance,
		Status:         domain.ShiftStatusOpen,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.cashRepo.FindOpenShift(ctx, pavilion)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrShiftAlreadyOpen
		}
		return s.cashRepo.CreateShift(ctx, shift)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrShiftAlreadyOpen
		}
		zap.L().Error("failed to open shift", zap.Int("pavilion", pavilion), zap.Error(err))
		return nil, err
	}
	zap.L().Info("shift opened", zap.Int("pavilion", pavilion), zap.Int("shift_id", shift.ID))
	return shift, nil
}

// CloseShift ends the shift with its counted closing balance.
func (s *Service) CloseShift(ctx context.Context, shiftID, employeeID int, closingBalance decimal.Decimal) (*domain.CashShift, error) {
	var shift *domain.CashShift
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		shift, err = s.cashRepo.FindShiftByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return ErrShiftNotFound
		}
		if shift.Status != domain.ShiftStatusOpen {
			return ErrShiftAlreadyClosed
		}
		closedAt := time.Now()
		if err := s.cashRepo.CloseShift(ctx, shiftID, closingBalance, employeeID, closedAt); err != nil {
			return err
		}
		shift.Status = domain.ShiftStatusClosed
		shift.ClosedAt = &closedAt
		shift.ClosedByID = &employeeID
		shift.ClosingBalance = &closingBalance
		return nil
	})
	if err != nil {
		zap.L().Error("failed to close shift", zap.Int("shift_id", shiftID), zap.Error(err))
		return nil, err
	}
	return shift, nil
}

// CurrentShift returns the pavilion's open shift with its payment total, or
// a nil shift when the register is closed.
func (s *Service) CurrentShift(ctx context.Context, pavilion int) (*ShiftSummary, error) {
	shift, err := s.cashRepo.FindOpenShift(ctx, pavilion)
	if err != nil {
		zap.L().Error("failed to get current shift", zap.Error(err))
		return nil, err
	}
	if shift == nil {
		return &ShiftSummary{Payments: decimal.Zero}, nil
	}
	payments, err := s.paymentRepo.SumByShiftID(ctx, shift.ID)
	if err != nil {
		zap.L().Error("failed to sum shift payments", zap.Error(err))
		return nil, err
	}
	return &ShiftSummary{Shift: shift, Payments: payments}, nil
}

func (s *Service) ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.CashShift, error) {
	shifts, err := s.cashRepo.ListShifts(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list shifts", zap.Error(err))
		return nil, err
	}
	return shifts, nil
}

func (s *Service) CreateCashRow(ctx context.Context, row *domain.CashRow) error {
	if err := s.cashRepo.CreateCashRow(ctx, row); err != nil {
		zap.L().Error("failed to create cash row", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListCashRows(ctx context.Context, limit int) ([]domain.CashRow, error) {
	rows, err := s.cashRepo.ListCashRows(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list cash rows", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *Service) UpdateCashRow(ctx context.Context, row *domain.CashRow) error {
	existing, err := s.cashRepo.FindCashRowByID(ctx, row.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRowNotFound
	}
	return s.cashRepo.UpdateCashRow(ctx, row)
}

func (s *Service) DeleteCashRow(ctx context.Context, id int) error {
	existing, err := s.cashRepo.FindCashRowByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRowNotFound
	}
	return s.cashRepo.DeleteCashRow(ctx, id)
}

func (s *Service) CreatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error {
	if err := s.cashRepo.CreatePlateCashRow(ctx, row); err != nil {
		zap.L().Error("failed to create plate cash row", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListPlateCashRows(ctx context.Context, limit int) ([]domain.PlateCashRow, error) {
	rows, err := s.cashRepo.ListPlateCashRows(ctx, limit)
	if err != nil {
		zap.L().Error("failed to list plate cash rows", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *Service) UpdatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error {
	existing, err := s.cashRepo.FindPlateCashRowByID(ctx, row.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRowNotFound
	}
	return s.cashRepo.UpdatePlateCashRow(ctx, row)
}

func (s *Service) DeletePlateCashRow(ctx context.Context, id int) error {
	existing, err := s.cashRepo.FindPlateCashRowByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRowNotFound
	}
	return s.cashRepo.DeletePlateCashRow(ctx, id)
}

// ListPayouts returns the unsettled payout register.
func (s *Service) ListPayouts(ctx context.Context) ([]domain.PlatePayout, error) {
	payouts, err := s.cashRepo.ListUnpaidPayouts(ctx)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

// SettlePayouts settles every unpaid payout in one transaction: one negative
// pavilion-1 cash row for the whole sum, one pavilion-2 register line per
// payout, and all payouts marked paid with the same actor and timestamp.
func (s *Service) SettlePayouts(ctx context.Context, employeeID int) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payouts, err := s.cashRepo.ListUnpaidPayouts(ctx)
		if err != nil {
			return err
		}
		if len(payouts) == 0 {
			return ErrNothingToPay
		}
		ids := make([]int, 0, len(payouts))
		for _, p := range payouts {
			total = total.Add(p.Amount)
			ids = append(ids, p.ID)
		}
		if !total.IsPositive() {
			return ErrNothingToPay
		}

		if err := s.cashRepo.CreateCashRow(ctx, &domain.CashRow{
			ClientName: PayoutClientName,
			Plates:     total.Neg(),
			Total:      total.Neg(),
		}); err != nil {
			return err
		}
		for _, p := range payouts {
			if err := s.cashRepo.CreatePlateCashRow(ctx, &domain.PlateCashRow{
				ClientName: p.ClientName,
				Amount:     p.Amount,
			}); err != nil {
				return err
			}
		}
		return s.cashRepo.MarkPayoutsPaid(ctx, ids, employeeID, time.Now())
	})
	if err != nil {
		if !errors.Is(err, ErrNothingToPay) {
			zap.L().Error("payout settlement failed", zap.Error(err))
		}
		return decimal.Zero, err
	}
	zap.L().Info("payouts settled", zap.String("total", total.String()), zap.Int("employee_id", employeeID))
	return total, nil
}
