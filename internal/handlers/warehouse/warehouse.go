package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/snekrasov/regcenter/internal/dto"
	warehouseservice "github.com/snekrasov/regcenter/internal/service/warehouseservice"
	"github.com/snekrasov/regcenter/pkg/utils"
)

type Service interface {
	Stock(ctx context.Context) (*warehouseservice.StockState, error)
	AddStock(ctx context.Context, quantity int) (*warehouseservice.StockState, error)
	WriteOffDefect(ctx context.Context) error
	MonthDefectCount(ctx context.Context) (int, error)
}

type WarehouseHandler struct {
	warehouseService Service
}

func New(warehouseService Service) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseService: warehouseService,
	}
}

// GetStock godoc
//
//	@Summary		Plate stock
//	@Description	Blanks on hand, blanks reserved for in-progress orders and what is left to promise.
//	@Tags			Warehouse
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StockResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/warehouse/stock [get]
func (h *WarehouseHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	state, err := h.warehouseService.Stock(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStockDTO(state))
}

// AddStock godoc
//
//	@Summary		Register a delivery
//	@Tags			Warehouse
//	@Accept			json
//	@Produce		json
//	@Param			delivery	body	dto.AddStockRequestDTO	true	"Delivered quantity"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StockResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid quantity"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/warehouse/stock [post]
func (h *WarehouseHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req dto.AddStockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state, err := h.warehouseService.AddStock(r.Context(), req.Quantity)
	if err != nil {
		if errors.Is(err, warehouseservice.ErrInvalidQuantity) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStockDTO(state))
}

// WriteOffDefect godoc
//
//	@Summary		Write off a spoiled blank
//	@Tags			Warehouse
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		409	{object}	utils.Response	"No blanks on hand"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/warehouse/defects [post]
func (h *WarehouseHandler) WriteOffDefect(w http.ResponseWriter, r *http.Request) {
	if err := h.warehouseService.WriteOffDefect(r.Context()); err != nil {
		if errors.Is(err, warehouseservice.ErrInsufficientStock) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Defect written off"})
}

// DefectCount godoc
//
//	@Summary		Defects this month
//	@Tags			Warehouse
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DefectCountResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/warehouse/defects [get]
func (h *WarehouseHandler) DefectCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.warehouseService.MonthDefectCount(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DefectCountResponseDTO{Month: count})
}

func toStockDTO(state *warehouseservice.StockState) dto.StockResponseDTO {
	return dto.StockResponseDTO{
		Quantity:  state.Quantity,
		Reserved:  state.Reserved,
		Available: state.Available,
		UpdatedAt: state.UpdatedAt.Format(time.RFC3339),
	}
}
