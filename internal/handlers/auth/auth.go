package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/snekrasov/regcenter/internal/domain"
	"github.com/snekrasov/regcenter/internal/dto"
	authservice "github.com/snekrasov/regcenter/internal/service/authservice"
	pkgauth "github.com/snekrasov/regcenter/pkg/auth"
	"github.com/snekrasov/regcenter/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, login, password string) (string, *domain.Employee, error)
	Me(ctx context.Context, employeeID int) (*domain.Employee, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Employee login
//	@Description	Authenticate an employee and issue a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequestDTO	true	"Login and password"
//	@Success		200			{object}	dto.LoginResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request payload"
//	@Failure		401			{object}	utils.Response	"Invalid credentials"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Login == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	token, employee, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
		Employee: dto.EmployeeDTO{
			ID:   employee.ID,
			Name: employee.Name,
			Role: string(employee.Role),
		},
	})
}

// Me godoc
//
//	@Summary		Current employee
//	@Description	Return the employee resolved from the bearer token.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EmployeeDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	employeeID := pkgauth.EmployeeID(r.Context())

	employee, err := h.authService.Me(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, authservice.ErrEmployeeNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EmployeeDTO{
		ID:   employee.ID,
		Name: employee.Name,
		Role: string(employee.Role),
	})
}
