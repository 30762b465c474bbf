package cash

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
	cashservice "github.com/snekrasov/regcenter/internal/service/cashservice"
	"github.com/snekrasov/regcenter/pkg/auth"
	"github.com/snekrasov/regcenter/pkg/utils"
)

const defaultListLimit = 500

type Service interface {
	OpenShift(ctx context.Context, pavilion, employeeID int, openingBalance decimal.Decimal) (*domain.CashShift, error)
	CloseShift(ctx context.Context, shiftID, employeeID int, closingBalance decimal.Decimal) (*domain.CashShift, error)
	CurrentShift(ctx context.Context, pavilion int) (*cashservice.ShiftSummary, error)
	ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]domain.CashShift, error)
	CreateCashRow(ctx context.Context, row *domain.CashRow) error
	ListCashRows(ctx context.Context, limit int) ([]domain.CashRow, error)
	UpdateCashRow(ctx context.Context, row *domain.CashRow) error
	DeleteCashRow(ctx context.Context, id int) error
	CreatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error
	ListPlateCashRows(ctx context.Context, limit int) ([]domain.PlateCashRow, error)
	UpdatePlateCashRow(ctx context.Context, row *domain.PlateCashRow) error
	DeletePlateCashRow(ctx context.Context, id int) error
	ListPayouts(ctx context.Context) ([]domain.PlatePayout, error)
	SettlePayouts(ctx context.Context, employeeID int) (decimal.Decimal, error)
}

type CashHandler struct {
	cashService Service
}

func New(cashService Service) *CashHandler {
	return &CashHandler{
		cashService: cashService,
	}
}

// OpenShift godoc
//
//	@Summary		Open a shift
//	@Description	Open the pavilion's accounting period. Only one shift per pavilion can be open.
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			shift	body	dto.OpenShiftRequestDTO	true	"Pavilion and opening balance"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ShiftDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		403	{object}	utils.Response	"Pavilion not accessible for this role"
//	@Failure		409	{object}	utils.Response	"Shift already open"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/shifts [post]
func (h *CashHandler) OpenShift(w http.ResponseWriter, r *http.Request) {
	employeeID := auth.EmployeeID(r.Context())

	var req dto.OpenShiftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Pavilion != 1 && req.Pavilion != 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "Pavilion must be 1 or 2")
		return
	}
	if !checkPavilion(w, r, req.Pavilion) {
		return
	}
	openingBalance, err := parseAmount(req.OpeningBalance)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid opening balance")
		return
	}

	shift, err := h.cashService.OpenShift(r.Context(), req.Pavilion, employeeID, openingBalance)
	if err != nil {
		if errors.Is(err, cashservice.ErrShiftAlreadyOpen) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toShiftDTO(shift))
}

// CloseShift godoc
//
//	@Summary		Close a shift
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Shift id"
//	@Param			shift	body	dto.CloseShiftRequestDTO	true	"Counted closing balance"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ShiftDTO
//	@Failure		404	{object}	utils.Response	"Shift not found"
//	@Failure		409	{object}	utils.Response	"Shift already closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/shifts/{id}/close [post]
func (h *CashHandler) CloseShift(w http.ResponseWriter, r *http.Request) {
	shiftID, ok := pathID(w, r, "Invalid shift id")
	if !ok {
		return
	}
	employeeID := auth.EmployeeID(r.Context())

	var req dto.CloseShiftRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	closingBalance, err := parseAmount(req.ClosingBalance)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid closing balance")
		return
	}

	shift, err := h.cashService.CloseShift(r.Context(), shiftID, employeeID, closingBalance)
	if err != nil {
		switch {
		case errors.Is(err, cashservice.ErrShiftNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Shift not found")
		case errors.Is(err, cashservice.ErrShiftAlreadyClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toShiftDTO(shift))
}

// CurrentShift godoc
//
//	@Summary		Current shift
//	@Description	The pavilion's open shift with the running payment total, or a null shift when the register is closed.
//	@Tags			Cash
//	@Produce		json
//	@Param			pavilion	query	int	true	"Pavilion (1 or 2)"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CurrentShiftResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid pavilion"
//	@Failure		403	{object}	utils.Response	"Pavilion not accessible for this role"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/shifts/current [get]
func (h *CashHandler) CurrentShift(w http.ResponseWriter, r *http.Request) {
	pavilion, err := strconv.Atoi(r.URL.Query().Get("pavilion"))
	if err != nil || (pavilion != 1 && pavilion != 2) {
		utils.RespondWithError(w, http.StatusBadRequest, "Pavilion must be 1 or 2")
		return
	}
	if !checkPavilion(w, r, pavilion) {
		return
	}

	summary, err := h.cashService.CurrentShift(r.Context(), pavilion)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := dto.CurrentShiftResponseDTO{Payments: summary.Payments.String()}
	if summary.Shift != nil {
		shiftDTO := toShiftDTO(summary.Shift)
		response.Shift = &shiftDTO
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListShifts godoc
//
//	@Summary		List shifts
//	@Tags			Cash
//	@Produce		json
//	@Param			pavilion	query	int		false	"Pavilion (1 or 2)"
//	@Param			status		query	string	false	"OPEN or CLOSED"
//	@Param			limit		query	int		false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ShiftDTO
//	@Failure		400	{object}	utils.Response	"Invalid filter"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/shifts [get]
func (h *CashHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	filter := domain.ShiftFilter{Limit: defaultListLimit}

	if raw := r.URL.Query().Get("pavilion"); raw != "" {
		pavilion, err := strconv.Atoi(raw)
		if err != nil || (pavilion != 1 && pavilion != 2) {
			utils.RespondWithError(w, http.StatusBadRequest, "Pavilion must be 1 or 2")
			return
		}
		if !checkPavilion(w, r, pavilion) {
			return
		}
		filter.Pavilion = &pavilion
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseShiftStatus(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown shift status")
			return
		}
		filter.Status = &status
	}

	shifts, err := h.cashService.ListShifts(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.ShiftDTO, 0, len(shifts))
	for i := range shifts {
		response = append(response, toShiftDTO(&shifts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateCashRow godoc
//
//	@Summary		Add a cash row
//	@Description	Append a manual line to the pavilion-1 register.
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			row	body	dto.CashRowRequestDTO	true	"Register line"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/rows [post]
func (h *CashHandler) CreateCashRow(w http.ResponseWriter, r *http.Request) {
	row, ok := decodeCashRow(w, r)
	if !ok {
		return
	}
	if err := h.cashService.CreateCashRow(r.Context(), row); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Row created"})
}

// ListCashRows godoc
//
//	@Summary		Pavilion-1 register
//	@Tags			Cash
//	@Produce		json
//	@Param			limit	query	int	false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CashRowDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/rows [get]
func (h *CashHandler) ListCashRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.cashService.ListCashRows(r.Context(), queryLimit(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.CashRowDTO, 0, len(rows))
	for _, row := range rows {
		response = append(response, dto.CashRowDTO{
			ID:          row.ID,
			ClientName:  row.ClientName,
			Application: row.Application.String(),
			StateDuty:   row.StateDuty.String(),
			DKP:         row.DKP.String(),
			Insurance:   row.Insurance.String(),
			Plates:      row.Plates.String(),
			Total:       row.Total.String(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateCashRow godoc
//
//	@Summary		Edit a cash row
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int						true	"Row id"
//	@Param			row	body	dto.CashRowRequestDTO	true	"Register line"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/rows/{id} [put]
func (h *CashHandler) UpdateCashRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid row id")
	if !ok {
		return
	}
	row, ok := decodeCashRow(w, r)
	if !ok {
		return
	}
	row.ID = id
	if err := h.cashService.UpdateCashRow(r.Context(), row); err != nil {
		if errors.Is(err, cashservice.ErrRowNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Row not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Row updated"})
}

// DeleteCashRow godoc
//
//	@Summary		Delete a cash row
//	@Tags			Cash
//	@Produce		json
//	@Param			id	path	int	true	"Row id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/rows/{id} [delete]
func (h *CashHandler) DeleteCashRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid row id")
	if !ok {
		return
	}
	if err := h.cashService.DeleteCashRow(r.Context(), id); err != nil {
		if errors.Is(err, cashservice.ErrRowNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Row not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Row deleted"})
}

// CreatePlateCashRow godoc
//
//	@Summary		Add a pavilion-2 row
//	@Description	Append a line to the pavilion-2 register. Negative amounts record cash handed out.
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			row	body	dto.PlateCashRowRequestDTO	true	"Register line"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/plate-rows [post]
func (h *CashHandler) CreatePlateCashRow(w http.ResponseWriter, r *http.Request) {
	row, ok := decodePlateCashRow(w, r)
	if !ok {
		return
	}
	if err := h.cashService.CreatePlateCashRow(r.Context(), row); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Row created"})
}

// ListPlateCashRows godoc
//
//	@Summary		Pavilion-2 register
//	@Tags			Cash
//	@Produce		json
//	@Param			limit	query	int	false	"Max rows"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PlateCashRowDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/plate-rows [get]
func (h *CashHandler) ListPlateCashRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.cashService.ListPlateCashRows(r.Context(), queryLimit(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PlateCashRowDTO, 0, len(rows))
	for _, row := range rows {
		response = append(response, dto.PlateCashRowDTO{
			ID:         row.ID,
			ClientName: row.ClientName,
			Amount:     row.Amount.String(),
			CreatedAt:  row.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePlateCashRow godoc
//
//	@Summary		Edit a pavilion-2 row
//	@Tags			Cash
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int							true	"Row id"
//	@Param			row	body	dto.PlateCashRowRequestDTO	true	"Register line"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/plate-rows/{id} [put]
func (h *CashHandler) UpdatePlateCashRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid row id")
	if !ok {
		return
	}
	row, ok := decodePlateCashRow(w, r)
	if !ok {
		return
	}
	row.ID = id
	if err := h.cashService.UpdatePlateCashRow(r.Context(), row); err != nil {
		if errors.Is(err, cashservice.ErrRowNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Row not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Row updated"})
}

// DeletePlateCashRow godoc
//
//	@Summary		Delete a pavilion-2 row
//	@Tags			Cash
//	@Produce		json
//	@Param			id	path	int	true	"Row id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/plate-rows/{id} [delete]
func (h *CashHandler) DeletePlateCashRow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid row id")
	if !ok {
		return
	}
	if err := h.cashService.DeletePlateCashRow(r.Context(), id); err != nil {
		if errors.Is(err, cashservice.ErrRowNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Row not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Row deleted"})
}

// ListPayouts godoc
//
//	@Summary		Unsettled payouts
//	@Description	Money owed by the pavilion-1 register to the plate operator for completed plate orders.
//	@Tags			Cash
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/payouts [get]
func (h *CashHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.cashService.ListPayouts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PayoutDTO, 0, len(payouts))
	for _, p := range payouts {
		response = append(response, dto.PayoutDTO{
			ID:         p.ID,
			OrderID:    p.OrderID,
			ClientName: p.ClientName,
			Amount:     p.Amount.String(),
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SettlePayouts godoc
//
//	@Summary		Settle payouts
//	@Description	Hand the accumulated plate money over: one negative pavilion-1 row, one pavilion-2 row per payout, all marked paid atomically.
//	@Tags			Cash
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SettlePayoutsResponseDTO
//	@Failure		409	{object}	utils.Response	"Nothing to pay out"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cash/payouts/settle [post]
func (h *CashHandler) SettlePayouts(w http.ResponseWriter, r *http.Request) {
	employeeID := auth.EmployeeID(r.Context())

	total, err := h.cashService.SettlePayouts(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, cashservice.ErrNothingToPay) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlePayoutsResponseDTO{Total: total.String()})
}

func checkPavilion(w http.ResponseWriter, r *http.Request, pavilion int) bool {
	role := domain.EmployeeRole(auth.Role(r.Context()))
	if !role.CanAccessPavilion(pavilion) {
		utils.RespondWithError(w, http.StatusForbidden, "Pavilion not accessible for this role")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, msg string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return 0, false
	}
	return id, true
}

func queryLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return defaultListLimit
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func decodeCashRow(w http.ResponseWriter, r *http.Request) (*domain.CashRow, bool) {
	var req dto.CashRowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	row := &domain.CashRow{ClientName: req.ClientName}
	for _, field := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{req.Application, &row.Application},
		{req.StateDuty, &row.StateDuty},
		{req.DKP, &row.DKP},
		{req.Insurance, &row.Insurance},
		{req.Plates, &row.Plates},
		{req.Total, &row.Total},
	} {
		value, err := parseAmount(field.raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
			return nil, false
		}
		*field.dst = value
	}
	return row, true
}

func decodePlateCashRow(w http.ResponseWriter, r *http.Request) (*domain.PlateCashRow, bool) {
	var req dto.PlateCashRowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return nil, false
	}
	return &domain.PlateCashRow{ClientName: req.ClientName, Amount: amount}, true
}

func toShiftDTO(shift *domain.CashShift) dto.ShiftDTO {
	response := dto.ShiftDTO{
		ID:             shift.ID,
		Pavilion:       shift.Pavilion,
		Status:         string(shift.Status),
		OpenedByID:     shift.OpenedByID,
		OpenedAt:       shift.OpenedAt.Format(time.RFC3339),
		ClosedByID:     shift.ClosedByID,
		OpeningBalance: shift.OpeningBalance.String(),
	}
	if shift.ClosedAt != nil {
		closedAt := shift.ClosedAt.Format(time.RFC3339)
		response.ClosedAt = &closedAt
	}
	if shift.ClosingBalance != nil {
		closingBalance := shift.ClosingBalance.String()
		response.ClosingBalance = &closingBalance
	}
	return response
}
