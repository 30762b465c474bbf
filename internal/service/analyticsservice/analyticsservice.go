package analyticsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/snekrasov/regcenter/internal/domain"
)

type PaymentRepo interface {
	TotalsInPeriod(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error)
	SumByTypeInPeriod(ctx context.Context, from, to time.Time, paymentType domain.PaymentType) (decimal.Decimal, error)
	EmployeeTotalsInPeriod(ctx context.Context, from, to time.Time) ([]domain.EmployeeTotal, error)
}

type EmployeeRepo interface {
	NamesByIDs(ctx context.Context, ids []int) (map[int]string, error)
}

type Service struct {
	paymentRepo  PaymentRepo
	employeeRepo EmployeeRepo
}

func New(paymentRepo PaymentRepo, employeeRepo EmployeeRepo) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

// RevenueSummary is one reporting-period rollup computed from payment
// postings. Average cheque is total over distinct paying orders.
type RevenueSummary struct {
	From          time.Time
	To            time.Time
	Total         decimal.Decimal
	StateDuty     decimal.Decimal
	Pavilion1     decimal.Decimal
	Pavilion2     decimal.Decimal
	OrdersCount   int
	AverageCheque decimal.Decimal
}

// EmployeeSummary is one employee's share of a period.
type EmployeeSummary struct {
	EmployeeID  *int
	Name        string
	OrdersCount int
	Total       decimal.Decimal
}

// Today aggregates payments posted since local midnight.
func (s *Service) Today(ctx context.Context) (*RevenueSummary, error) {
	from, to := dayBounds(time.Now())
	return s.summary(ctx, from, to)
}

// Month aggregates payments posted since the first of the current month.
func (s *Service) Month(ctx context.Context) (*RevenueSummary, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.summary(ctx, from, now)
}

// Employees breaks the period down by the employee who took the money.
// Postings without an employee are reported under one unattributed bucket.
func (s *Service) Employees(ctx context.Context, from, to time.Time) ([]EmployeeSummary, error) {
	totals, err := s.paymentRepo.EmployeeTotalsInPeriod(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to aggregate employee totals", zap.Error(err))
		return nil, err
	}

	ids := make([]int, 0, len(totals))
	for _, t := range totals {
		if t.EmployeeID != nil {
			ids = append(ids, *t.EmployeeID)
		}
	}
	names := map[int]string{}
	if len(ids) > 0 {
		names, err = s.employeeRepo.NamesByIDs(ctx, ids)
		if err != nil {
			zap.L().Error("failed to resolve employee names", zap.Error(err))
			return nil, err
		}
	}

	summaries := make([]EmployeeSummary, 0, len(totals))
	for _, t := range totals {
		summary := EmployeeSummary{
			EmployeeID:  t.EmployeeID,
			Name:        "—",
			OrdersCount: t.OrdersCount,
			Total:       t.Total,
		}
		if t.EmployeeID != nil {
			if name, ok := names[*t.EmployeeID]; ok {
				summary.Name = name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) summary(ctx context.Context, from, to time.Time) (*RevenueSummary, error) {
	totals, err := s.paymentRepo.TotalsInPeriod(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to aggregate period totals", zap.Error(err))
		return nil, err
	}

	summary := &RevenueSummary{
		From:          from,
		To:            to,
		Total:         totals.Total,
		OrdersCount:   totals.OrdersCount,
		AverageCheque: decimal.Zero,
	}
	for _, pt := range []struct {
		paymentType domain.PaymentType
		dst         *decimal.Decimal
	}{
		{domain.PaymentTypeStateDuty, &summary.StateDuty},
		{domain.PaymentTypeIncomePavilion1, &summary.Pavilion1},
		{domain.PaymentTypeIncomePavilion2, &summary.Pavilion2},
	} {
		sum, err := s.paymentRepo.SumByTypeInPeriod(ctx, from, to, pt.paymentType)
		if err != nil {
			zap.L().Error("failed to aggregate payment type",
				zap.String("type", string(pt.paymentType)), zap.Error(err))
			return nil, err
		}
		*pt.dst = sum
	}
	if summary.OrdersCount > 0 {
		summary.AverageCheque = summary.Total.Div(decimal.NewFromInt(int64(summary.OrdersCount))).Round(2)
	}
	return summary, nil
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, now
}
