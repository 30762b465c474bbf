package domain

import "github.com/shopspring/decimal"

// OrderFilter narrows order listings. Nil fields are not applied.
type OrderFilter struct {
	Status    *OrderStatus
	NeedPlate *bool
	Limit     int
}

// ShiftFilter narrows shift listings. Nil fields are not applied.
type ShiftFilter struct {
	Pavilion *int
	Status   *ShiftStatus
	Limit    int
}

// PeriodTotals is one bucket of the payment-derived revenue rollup.
type PeriodTotals struct {
	Total       decimal.Decimal
	OrdersCount int
}

// EmployeeTotal aggregates payments taken by one employee in a period.
type EmployeeTotal struct {
	EmployeeID  *int
	OrdersCount int
	Total       decimal.Decimal
}
