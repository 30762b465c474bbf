package analyticsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/snekrasov/regcenter/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPaymentRepo, *MockEmployeeRepo) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockPaymentRepo(ctrl)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	service := New(paymentRepo, employeeRepo)
	defer ctrl.Finish()
	return service, paymentRepo, employeeRepo
}

func TestToday(t *testing.T) {
	service, paymentRepo, _ := NewMock(t)

	t.Run("rolls up the day from payments", func(t *testing.T) {
		paymentRepo.EXPECT().TotalsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
				assert.Equal(t, 0, from.Hour())
				assert.Equal(t, 0, from.Minute())
				return &domain.PeriodTotals{Total: decimal.NewFromInt(4501), OrdersCount: 2}, nil
			})
		paymentRepo.EXPECT().SumByTypeInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), domain.PaymentTypeStateDuty).
			Return(decimal.NewFromInt(2000), nil)
		paymentRepo.EXPECT().SumByTypeInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), domain.PaymentTypeIncomePavilion1).
			Return(decimal.NewFromInt(1001), nil)
		paymentRepo.EXPECT().SumByTypeInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), domain.PaymentTypeIncomePavilion2).
			Return(decimal.NewFromInt(1500), nil)

		summary, err := service.Today(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "4501", summary.Total.String())
		assert.Equal(t, "2000", summary.StateDuty.String())
		assert.Equal(t, "1001", summary.Pavilion1.String())
		assert.Equal(t, "1500", summary.Pavilion2.String())
		assert.Equal(t, 2, summary.OrdersCount)
		assert.Equal(t, "2250.5", summary.AverageCheque.String())
	})

	t.Run("empty day has zero average cheque", func(t *testing.T) {
		paymentRepo.EXPECT().TotalsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.PeriodTotals{Total: decimal.Zero, OrdersCount: 0}, nil)
		paymentRepo.EXPECT().SumByTypeInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil).Times(3)

		summary, err := service.Today(context.Background())
		assert.NoError(t, err)
		assert.True(t, summary.AverageCheque.IsZero())
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		paymentRepo.EXPECT().TotalsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := service.Today(context.Background())
		assert.Error(t, err)
	})
}

func TestMonth(t *testing.T) {
	service, paymentRepo, _ := NewMock(t)

	paymentRepo.EXPECT().TotalsInPeriod(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
			assert.Equal(t, 1, from.Day())
			return &domain.PeriodTotals{Total: decimal.NewFromInt(90000), OrdersCount: 30}, nil
		})
	paymentRepo.EXPECT().SumByTypeInPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(30000), nil).Times(3)

	summary, err := service.Month(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "3000", summary.AverageCheque.String())
}

func TestEmployees(t *testing.T) {
	service, paymentRepo, employeeRepo := NewMock(t)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	t.Run("resolves names and keeps unattributed bucket", func(t *testing.T) {
		id := 5
		paymentRepo.EXPECT().EmployeeTotalsInPeriod(gomock.Any(), from, to).Return([]domain.EmployeeTotal{
			{EmployeeID: &id, OrdersCount: 12, Total: decimal.NewFromInt(24000)},
			{EmployeeID: nil, OrdersCount: 1, Total: decimal.NewFromInt(500)},
		}, nil)
		employeeRepo.EXPECT().NamesByIDs(gomock.Any(), []int{5}).Return(map[int]string{5: "Смирнова А."}, nil)

		summaries, err := service.Employees(context.Background(), from, to)
		assert.NoError(t, err)
		assert.Len(t, summaries, 2)
		assert.Equal(t, "Смирнова А.", summaries[0].Name)
		assert.Equal(t, 12, summaries[0].OrdersCount)
		assert.Equal(t, "—", summaries[1].Name)
		assert.Nil(t, summaries[1].EmployeeID)
	})

	t.Run("no payments in period", func(t *testing.T) {
		paymentRepo.EXPECT().EmployeeTotalsInPeriod(gomock.Any(), from, to).Return(nil, nil)

		summaries, err := service.Employees(context.Background(), from, to)
		assert.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
