package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/snekrasov/regcenter/docs"
	analyticshandlers "github.com/snekrasov/regcenter/internal/handlers/analytics"
	authhandlers "github.com/snekrasov/regcenter/internal/handlers/auth"
	cashhandlers "github.com/snekrasov/regcenter/internal/handlers/cash"
	ordershandlers "github.com/snekrasov/regcenter/internal/handlers/orders"
	warehousehandlers "github.com/snekrasov/regcenter/internal/handlers/warehouse"
	"github.com/snekrasov/regcenter/internal/service"
	"github.com/snekrasov/regcenter/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	PayExtra(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	PlateList(w http.ResponseWriter, r *http.Request)
	FormHistory(w http.ResponseWriter, r *http.Request)
	PriceList(w http.ResponseWriter, r *http.Request)
}

type CashHandler interface {
	OpenShift(w http.ResponseWriter, r *http.Request)
	CloseShift(w http.ResponseWriter, r *http.Request)
	CurrentShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	CreateCashRow(w http.ResponseWriter, r *http.Request)
	ListCashRows(w http.ResponseWriter, r *http.Request)
	UpdateCashRow(w http.ResponseWriter, r *http.Request)
	DeleteCashRow(w http.ResponseWriter, r *http.Request)
	CreatePlateCashRow(w http.ResponseWriter, r *http.Request)
	ListPlateCashRows(w http.ResponseWriter, r *http.Request)
	UpdatePlateCashRow(w http.ResponseWriter, r *http.Request)
	DeletePlateCashRow(w http.ResponseWriter, r *http.Request)
	ListPayouts(w http.ResponseWriter, r *http.Request)
	SettlePayouts(w http.ResponseWriter, r *http.Request)
}

type WarehouseHandler interface {
	GetStock(w http.ResponseWriter, r *http.Request)
	AddStock(w http.ResponseWriter, r *http.Request)
	WriteOffDefect(w http.ResponseWriter, r *http.Request)
	DefectCount(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	OrderHandler     OrderHandler
	CashHandler      CashHandler
	WarehouseHandler WarehouseHandler
	AnalyticsHandler AnalyticsHandler

	jwtService *auth.JWTService
}

func New(s *service.Services, notifier ordershandlers.Notifier, jwtService *auth.JWTService) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		OrderHandler:     ordershandlers.New(s.OrderService, notifier),
		CashHandler:      cashhandlers.New(s.CashService),
		WarehouseHandler: warehousehandlers.New(s.WarehouseService),
		AnalyticsHandler: analyticshandlers.New(s.AnalyticsService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.jwtService.Middleware)

			r.Get("/auth/me", h.AuthHandler.Me)
			r.Get("/price-list", h.OrderHandler.PriceList)
			r.Get("/form-history", h.OrderHandler.FormHistory)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/plate-list", h.OrderHandler.PlateList)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.OrderHandler.GetOrder)
					r.Get("/payments", h.OrderHandler.GetPayments)
					r.Post("/pay", h.OrderHandler.Pay)
					r.Post("/pay-extra", h.OrderHandler.PayExtra)
					r.Patch("/status", h.OrderHandler.UpdateStatus)
				})
			})

			r.Route("/cash", func(r chi.Router) {
				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.CashHandler.OpenShift)
					r.Get("/", h.CashHandler.ListShifts)
					r.Get("/current", h.CashHandler.CurrentShift)
					r.Post("/{id}/close", h.CashHandler.CloseShift)
				})
				r.Route("/rows", func(r chi.Router) {
					r.Post("/", h.CashHandler.CreateCashRow)
					r.Get("/", h.CashHandler.ListCashRows)
					r.Put("/{id}", h.CashHandler.UpdateCashRow)
					r.Delete("/{id}", h.CashHandler.DeleteCashRow)
				})
				r.Route("/plate-rows", func(r chi.Router) {
					r.Post("/", h.CashHandler.CreatePlateCashRow)
					r.Get("/", h.CashHandler.ListPlateCashRows)
					r.Put("/{id}", h.CashHandler.UpdatePlateCashRow)
					r.Delete("/{id}", h.CashHandler.DeletePlateCashRow)
				})
				r.Route("/payouts", func(r chi.Router) {
					r.Get("/", h.CashHandler.ListPayouts)
					r.Post("/settle", h.CashHandler.SettlePayouts)
				})
			})

			r.Route("/warehouse", func(r chi.Router) {
				r.Get("/stock", h.WarehouseHandler.GetStock)
				r.Post("/stock", h.WarehouseHandler.AddStock)
				r.Get("/defects", h.WarehouseHandler.DefectCount)
				r.Post("/defects", h.WarehouseHandler.WriteOffDefect)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/today", h.AnalyticsHandler.Today)
				r.Get("/month", h.AnalyticsHandler.Month)
				r.Get("/employees", h.AnalyticsHandler.Employees)
			})
		})
	})

	return r
}
