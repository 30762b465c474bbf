package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/snekrasov/regcenter/internal/dto"
	analyticsservice "github.com/snekrasov/regcenter/internal/service/analyticsservice"
	"github.com/snekrasov/regcenter/pkg/utils"
)

type Service interface {
	Today(ctx context.Context) (*analyticsservice.RevenueSummary, error)
	Month(ctx context.Context) (*analyticsservice.RevenueSummary, error)
	Employees(ctx context.Context, from, to time.Time) ([]analyticsservice.EmployeeSummary, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Today godoc
//
//	@Summary		Today's revenue
//	@Description	Rollup of payments posted since midnight: total, per payment type, distinct orders, average cheque.
//	@Tags			Analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RevenueSummaryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/today [get]
func (h *AnalyticsHandler) Today(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Today(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// Month godoc
//
//	@Summary		Month-to-date revenue
//	@Tags			Analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RevenueSummaryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/month [get]
func (h *AnalyticsHandler) Month(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Month(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// Employees godoc
//
//	@Summary		Per-employee revenue
//	@Description	Breakdown of a period by the employee who took the money. Defaults to the current month.
//	@Tags			Analytics
//	@Produce		json
//	@Param			from	query	string	false	"Period start (RFC 3339)"
//	@Param			to		query	string	false	"Period end (RFC 3339)"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EmployeeSummaryDTO
//	@Failure		400	{object}	utils.Response	"Invalid period"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/employees [get]
func (h *AnalyticsHandler) Employees(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid period start")
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid period end")
			return
		}
		to = parsed
	}
	if to.Before(from) {
		utils.RespondWithError(w, http.StatusBadRequest, "Period end before start")
		return
	}

	summaries, err := h.analyticsService.Employees(r.Context(), from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.EmployeeSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, dto.EmployeeSummaryDTO{
			EmployeeID:  s.EmployeeID,
			Name:        s.Name,
			OrdersCount: s.OrdersCount,
			Total:       s.Total.String(),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toSummaryDTO(summary *analyticsservice.RevenueSummary) dto.RevenueSummaryDTO {
	return dto.RevenueSummaryDTO{
		From:          summary.From.Format(time.RFC3339),
		To:            summary.To.Format(time.RFC3339),
		Total:         summary.Total.String(),
		StateDuty:     summary.StateDuty.String(),
		Pavilion1:     summary.Pavilion1.String(),
		Pavilion2:     summary.Pavilion2.String(),
		OrdersCount:   summary.OrdersCount,
		AverageCheque: summary.AverageCheque.String(),
	}
}
