package service

import (
	"time"

	"github.com/snekrasov/regcenter/internal/config"
	"github.com/snekrasov/regcenter/internal/handlers/analytics"
	authhandlers "github.com/snekrasov/regcenter/internal/handlers/auth"
	"github.com/snekrasov/regcenter/internal/handlers/cash"
	"github.com/snekrasov/regcenter/internal/handlers/orders"
	"github.com/snekrasov/regcenter/internal/handlers/warehouse"
	"github.com/snekrasov/regcenter/internal/pg"
	"github.com/snekrasov/regcenter/internal/repo"
	analyticsservice "github.com/snekrasov/regcenter/internal/service/analyticsservice"
	authservice "github.com/snekrasov/regcenter/internal/service/authservice"
	cashservice "github.com/snekrasov/regcenter/internal/service/cashservice"
	orderservice "github.com/snekrasov/regcenter/internal/service/orderservice"
	warehouseservice "github.com/snekrasov/regcenter/internal/service/warehouseservice"
	pkgauth "github.com/snekrasov/regcenter/pkg/auth"
)

type Services struct {
	AuthService      authhandlers.Service
	OrderService     orders.Service
	CashService      cash.Service
	WarehouseService warehouse.Service
	AnalyticsService analytics.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.JWTExpireMinutes) * time.Minute

	authService := authservice.New(repo.EmployeeRepo, &pkgauth.HashService{}, jwtService, tokenTTL)
	orderService := orderservice.New(repo.OrderRepo, repo.PaymentRepo, repo.CashRepo, repo.WarehouseRepo, txManager)
	cashService := cashservice.New(repo.CashRepo, repo.PaymentRepo, txManager)
	warehouseService := warehouseservice.New(repo.WarehouseRepo, txManager)
	analyticsService := analyticsservice.New(repo.PaymentRepo, repo.EmployeeRepo)

	return &Services{
		AuthService:      authService,
		OrderService:     orderService,
		CashService:      cashService,
		WarehouseService: warehouseService,
		AnalyticsService: analyticsService,
	}
}
