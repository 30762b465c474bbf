package repo

import (
	"github.com/snekrasov/regcenter/internal/pg"
	cashrepo "github.com/snekrasov/regcenter/internal/repo/cash-repo"
	employeerepo "github.com/snekrasov/regcenter/internal/repo/employee-repo"
	orderrepo "github.com/snekrasov/regcenter/internal/repo/order-repo"
	paymentrepo "github.com/snekrasov/regcenter/internal/repo/payment-repo"
	warehouserepo "github.com/snekrasov/regcenter/internal/repo/warehouse-repo"
)

type Repositories struct {
	OrderRepo     *orderrepo.Repository
	PaymentRepo   *paymentrepo.Repository
	CashRepo      *cashrepo.Repository
	WarehouseRepo *warehouserepo.Repository
	EmployeeRepo  *employeerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		OrderRepo:     orderrepo.New(conn),
		PaymentRepo:   paymentrepo.New(conn),
		CashRepo:      cashrepo.New(conn),
		WarehouseRepo: warehouserepo.New(conn),
		EmployeeRepo:  employeerepo.New(conn),
	}
}
