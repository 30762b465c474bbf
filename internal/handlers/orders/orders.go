package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/dto"
	"github.com/snekrasov/regcenter/internal/pricelist"
	orderservice "github.com/snekrasov/regcenter/internal/service/orderservice"
	"github.com/snekrasov/regcenter/pkg/auth"
	"github.com/snekrasov/regcenter/pkg/utils"
)

const defaultListLimit = 200

type Service interface {
	CreateOrder(ctx context.Context, form *domain.FormData, stateDuty, incomeP1, incomeP2 decimal.Decimal, serviceType string, employeeID int) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	GetOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	PlateList(ctx context.Context, limit int) ([]domain.Order, error)
	GetOrderPayments(ctx context.Context, orderID int) ([]domain.Payment, decimal.Decimal, error)
	Pay(ctx context.Context, orderID, employeeID int) (*domain.Order, error)
	PayExtra(ctx context.Context, orderID int, amount decimal.Decimal, employeeID int) error
	UpdateStatus(ctx context.Context, orderID int, next domain.OrderStatus, employeeID int) (*domain.Order, error)
	FormHistory(ctx context.Context, limit int) ([]domain.FormHistory, error)
}

// Notifier is called after a successful payment of a plate order. It must
// never fail the request.
type Notifier interface {
	PlateOrderPaid(ctx context.Context, orderID int, publicID string, total decimal.Decimal, plateQty int)
}

type OrderHandler struct {
	orderService Service
	notifier     Notifier
}

func New(orderService Service, notifier Notifier) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		notifier:     notifier,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Register a new intake form. Pavilion-1 income and the plate flag are derived from the priced document list.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body	dto.CreateOrderRequestDTO	true	"Intake form"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	employeeID := auth.EmployeeID(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	stateDuty, err := parseAmount(req.StateDutyAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid state duty amount")
		return
	}
	incomeP1, err := parseAmount(req.IncomePavilion1)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pavilion-1 income")
		return
	}
	incomeP2, err := parseAmount(req.IncomePavilion2)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pavilion-2 income")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.FormData, stateDuty, incomeP1, incomeP2, req.ServiceType, employeeID)
	if err != nil {
		if errors.Is(err, orderservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order, true))
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	List orders filtered by status and plate requirement, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			status		query	string	false	"Order status"
//	@Param			need_plate	query	bool	false	"Only plate orders"
//	@Param			limit		query	int		false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	filter := domain.OrderFilter{Limit: defaultListLimit}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
			return
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("need_plate"); raw != "" {
		needPlate, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid need_plate value")
			return
		}
		filter.NeedPlate = &needPlate
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	orders, err := h.orderService.GetOrders(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderDTO(&orders[i], false))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order, true))
}

// GetPayments godoc
//
//	@Summary		Order payments and debt
//	@Description	List the order's payment postings; debt is recomputed from them, not from the stored total.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderPaymentsResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payments [get]
func (h *OrderHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	payments, debt, err := h.orderService.GetOrderPayments(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.OrderPaymentsResponseDTO{
		Payments: make([]dto.PaymentDTO, 0, len(payments)),
		Debt:     debt.String(),
	}
	for _, p := range payments {
		response.Payments = append(response.Payments, dto.PaymentDTO{
			ID:        p.ID,
			Amount:    p.Amount.String(),
			Type:      string(p.Type),
			ShiftID:   p.ShiftID,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Pay godoc
//
//	@Summary		Pay an order
//	@Description	Post all the order's money, mark it PAID, seed the cash register and the form history.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order cannot be paid in its current status"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	employeeID := auth.EmployeeID(r.Context())

	order, err := h.orderService.Pay(r.Context(), orderID, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if order.NeedPlate {
		h.notifier.PlateOrderPaid(r.Context(), order.ID, order.PublicID, order.TotalAmount, order.FormData.PlateQty())
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order, true))
}

// PayExtra godoc
//
//	@Summary		Plate surcharge
//	@Description	Post an extra pavilion-2 payment against a plate order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Order id"
//	@Param			payment	body	dto.PayExtraRequestDTO	true	"Surcharge amount"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid amount"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Order does not require plates"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/pay-extra [post]
func (h *OrderHandler) PayExtra(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	employeeID := auth.EmployeeID(r.Context())

	var req dto.PayExtraRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	if err := h.orderService.PayExtra(r.Context(), orderID, amount, employeeID); err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrNotApplicable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Surcharge posted"})
}

// UpdateStatus godoc
//
//	@Summary		Update order status
//	@Description	Apply one transition of the order state machine together with its warehouse side effects.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Order id"
//	@Param			status	body	dto.UpdateStatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown status"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Transition not allowed or not enough blanks"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r)
	if !ok {
		return
	}
	employeeID := auth.EmployeeID(r.Context())

	var req dto.UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), orderID, status, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, orderservice.ErrInvalidTransition),
			errors.Is(err, orderservice.ErrInsufficientStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order, true))
}

// PlateList godoc
//
//	@Summary		Pavilion-2 work queue
//	@Description	Paid plate orders that have not been completed yet.
//	@Tags			Orders
//	@Produce		json
//	@Param			limit	query	int	false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/plate-list [get]
func (h *OrderHandler) PlateList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.orderService.PlateList(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderDTO(&orders[i], true))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// FormHistory godoc
//
//	@Summary		Form snapshots
//	@Description	Past intake forms for pre-filling repeat clients, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			limit	query	int	false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.FormHistoryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/form-history [get]
func (h *OrderHandler) FormHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	history, err := h.orderService.FormHistory(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.FormHistoryDTO, 0, len(history))
	for _, snapshot := range history {
		response = append(response, dto.FormHistoryDTO{
			ID:        snapshot.ID,
			OrderID:   snapshot.OrderID,
			FormData:  snapshot.FormData,
			CreatedAt: snapshot.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PriceList godoc
//
//	@Summary		Document price list
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	dto.PriceListItemDTO
//	@Router			/api/price-list [get]
func (h *OrderHandler) PriceList(w http.ResponseWriter, r *http.Request) {
	items := pricelist.Items()
	response := make([]dto.PriceListItemDTO, 0, len(items))
	for _, item := range items {
		response = append(response, dto.PriceListItemDTO{
			Template: item.Template,
			Label:    item.Label,
			Price:    item.Price.String(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func toOrderDTO(order *domain.Order, withForm bool) dto.OrderResponseDTO {
	response := dto.OrderResponseDTO{
		ID:              order.ID,
		PublicID:        order.PublicID,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount.String(),
		StateDutyAmount: order.StateDutyAmount.String(),
		IncomePavilion1: order.IncomePavilion1.String(),
		IncomePavilion2: order.IncomePavilion2.String(),
		NeedPlate:       order.NeedPlate,
		ServiceType:     order.ServiceType,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       order.UpdatedAt.Format(time.RFC3339),
	}
	if withForm {
		response.FormData = order.FormData
	}
	return response
}
