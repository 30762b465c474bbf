package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/dto"
	orderservice "github.com/snekrasov/regcenter/internal/service/orderservice"
	"github.com/snekrasov/regcenter/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockNotifier) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	notifier := NewMockNotifier(ctrl)
	handler := New(service, notifier)
	defer ctrl.Finish()
	return handler, service, notifier
}

func newRequest(method, target, body string, pathID string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.EmployeeIDKey, 5)
	ctx = context.WithValue(ctx, auth.RoleKey, string(domain.RoleOperator))
	if pathID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", pathID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func paidPlateOrder() *domain.Order {
	return &domain.Order{
		ID:              10,
		PublicID:        "6f1f7d0e-4b7a-4a57-9a44-8d7f9c2b3a10",
		Status:          domain.OrderStatusPaid,
		TotalAmount:     decimal.NewFromInt(3500),
		StateDutyAmount: decimal.NewFromInt(2000),
		IncomePavilion2: decimal.NewFromInt(1500),
		NeedPlate:       true,
		ServiceType:     "registration",
		FormData:        &domain.FormData{ClientFIO: "Иванов Иван", PlateQuantity: 2},
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful order creation",
			body: `{"state_duty_amount":"2000","income_pavilion2":"1500","service_type":"registration","form_data":{"client_fio":"Иванов Иван"}}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), &domain.FormData{ClientFIO: "Иванов Иван"},
						decimal.NewFromInt(2000), decimal.Zero, decimal.NewFromInt(1500), "registration", 5).
					Return(paidPlateOrder(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request payload",
			body:          "{",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request payload",
		},
		{
			name:          "Malformed state duty",
			body:          `{"state_duty_amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid state duty amount",
		},
		{
			name: "Negative amount rejected by service",
			body: `{"state_duty_amount":"-1"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), decimal.NewFromInt(-1), decimal.Zero, decimal.Zero, "", 5).
					Return(nil, orderservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any(), decimal.Zero, decimal.Zero, decimal.Zero, "", 5).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders", tt.body, "")
			w := httptest.NewRecorder()

			handler.CreateOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.OrderResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 10, body.ID)
				assert.Equal(t, "PAID", body.Status)
				assert.Equal(t, "3500", body.TotalAmount)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	paid := domain.OrderStatusPaid
	needPlate := true

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful listing with filters",
			target: "/api/orders?status=PAID&need_plate=true&limit=10",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), domain.OrderFilter{Status: &paid, NeedPlate: &needPlate, Limit: 10}).
					Return([]domain.Order{*paidPlateOrder()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown status",
			target:        "/api/orders?status=SHIPPED",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown order status",
		},
		{
			name:          "Invalid need_plate",
			target:        "/api/orders?need_plate=maybe",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid need_plate value",
		},
		{
			name:          "Invalid limit",
			target:        "/api/orders?limit=0",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name:   "Internal server error",
			target: "/api/orders",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), domain.OrderFilter{Limit: defaultListLimit}).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, tt.target, "", "")
			w := httptest.NewRecorder()

			handler.GetOrders(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetOrderHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		pathID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful retrieval",
			pathID: "10",
			prepareMock: func() {
				service.EXPECT().GetOrder(gomock.Any(), 10).Return(paidPlateOrder(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid id",
			pathID:        "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid order id",
		},
		{
			name:   "Order not found",
			pathID: "99",
			prepareMock: func() {
				service.EXPECT().GetOrder(gomock.Any(), 99).Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/orders/"+tt.pathID, "", tt.pathID)
			w := httptest.NewRecorder()

			handler.GetOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetPaymentsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	shiftID := 7
	payments := []domain.Payment{
		{ID: 1, OrderID: 10, Amount: decimal.NewFromInt(2000), Type: domain.PaymentTypeStateDuty, ShiftID: &shiftID, CreatedAt: time.Now()},
		{ID: 2, OrderID: 10, Amount: decimal.NewFromInt(1500), Type: domain.PaymentTypeIncomePavilion2, CreatedAt: time.Now()},
	}

	service.EXPECT().GetOrderPayments(gomock.Any(), 10).Return(payments, decimal.Zero, nil)

	r := newRequest(http.MethodGet, "/api/orders/10/payments", "", "10")
	w := httptest.NewRecorder()

	handler.GetPayments(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.OrderPaymentsResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "0", body.Debt)
	assert.Len(t, body.Payments, 2)
	assert.Equal(t, "STATE_DUTY", body.Payments[0].Type)
	assert.Equal(t, &shiftID, body.Payments[0].ShiftID)
	assert.Nil(t, body.Payments[1].ShiftID)
}

func TestPayHandler(t *testing.T) {
	handler, service, notifier := NewMock(t)

	tests := []struct {
		name          string
		pathID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Plate order paid and operators notified",
			pathID: "10",
			prepareMock: func() {
				order := paidPlateOrder()
				service.EXPECT().Pay(gomock.Any(), 10, 5).Return(order, nil)
				notifier.EXPECT().
					PlateOrderPaid(gomock.Any(), 10, order.PublicID, order.TotalAmount, 2)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Plain order paid without notification",
			pathID: "11",
			prepareMock: func() {
				order := paidPlateOrder()
				order.ID = 11
				order.NeedPlate = false
				service.EXPECT().Pay(gomock.Any(), 11, 5).Return(order, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Order not found",
			pathID: "99",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), 99, 5).Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Order not found",
		},
		{
			name:   "Order already paid",
			pathID: "10",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), 10, 5).Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Internal server error",
			pathID: "10",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), 10, 5).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders/"+tt.pathID+"/pay", "", tt.pathID)
			w := httptest.NewRecorder()

			handler.Pay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestPayExtraHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Surcharge posted",
			body: `{"amount":"700"}`,
			prepareMock: func() {
				service.EXPECT().
					PayExtra(gomock.Any(), 10, decimal.NewFromInt(700), 5).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed amount",
			body:          `{"amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().
					PayExtra(gomock.Any(), 10, decimal.NewFromInt(0), 5).
					Return(orderservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Order does not require plates",
			body: `{"amount":"700"}`,
			prepareMock: func() {
				service.EXPECT().
					PayExtra(gomock.Any(), 10, decimal.NewFromInt(700), 5).
					Return(orderservice.ErrNotApplicable)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/orders/10/pay-extra", tt.body, "10")
			w := httptest.NewRecorder()

			handler.PayExtra(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful transition",
			body: `{"status":"PLATE_IN_PROGRESS"}`,
			prepareMock: func() {
				order := paidPlateOrder()
				order.Status = domain.OrderStatusPlateInProgress
				service.EXPECT().
					UpdateStatus(gomock.Any(), 10, domain.OrderStatusPlateInProgress, 5).
					Return(order, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown status",
			body:          `{"status":"SHIPPED"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown order status",
		},
		{
			name: "Transition not allowed",
			body: `{"status":"PAID"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), 10, domain.OrderStatusPaid, 5).
					Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not enough blanks",
			body: `{"status":"PLATE_IN_PROGRESS"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateStatus(gomock.Any(), 10, domain.OrderStatusPlateInProgress, 5).
					Return(nil, orderservice.ErrInsufficientStock)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPatch, "/api/orders/10/status", tt.body, "10")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestPlateListHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().PlateList(gomock.Any(), 50).Return([]domain.Order{*paidPlateOrder()}, nil)

	r := newRequest(http.MethodGet, "/api/orders/plate-list?limit=50", "", "")
	w := httptest.NewRecorder()

	handler.PlateList(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.OrderResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.NotNil(t, body[0].FormData)
}

func TestFormHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	orderID := 10
	service.EXPECT().
		FormHistory(gomock.Any(), defaultListLimit).
		Return([]domain.FormHistory{
			{ID: 1, OrderID: &orderID, FormData: &domain.FormData{ClientFIO: "Иванов Иван"}, CreatedAt: time.Now()},
		}, nil)

	r := newRequest(http.MethodGet, "/api/form-history", "", "")
	w := httptest.NewRecorder()

	handler.FormHistory(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.FormHistoryDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "Иванов Иван", body[0].FormData.ClientFIO)
}

func TestPriceListHandler(t *testing.T) {
	handler, _, _ := NewMock(t)

	r := newRequest(http.MethodGet, "/api/price-list", "", "")
	w := httptest.NewRecorder()

	handler.PriceList(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	raw := w.Body.Bytes()
	var body []dto.PriceListItemDTO
	_ = json.Unmarshal(raw, &body)
	assert.NotEmpty(t, body)
	assert.Contains(t, string(raw), "number.docx")
}
