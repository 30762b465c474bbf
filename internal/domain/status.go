package domain

import "fmt"

// OrderStatus is the order lifecycle state. Values are stored and serialized
// as the exact string tokens below; anything else is rejected at the boundary.
type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "CREATED"
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusPaid            OrderStatus = "PAID"
	OrderStatusPlateInProgress OrderStatus = "PLATE_IN_PROGRESS"
	OrderStatusPlateReady      OrderStatus = "PLATE_READY"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusProblem         OrderStatus = "PROBLEM"
)

// allowedTransitions is the full adjacency of the order state machine.
// COMPLETED and PROBLEM are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:         {OrderStatusAwaitingPayment, OrderStatusProblem},
	OrderStatusAwaitingPayment: {OrderStatusPaid, OrderStatusProblem},
	OrderStatusPaid:            {OrderStatusPlateInProgress, OrderStatusCompleted, OrderStatusProblem},
	OrderStatusPlateInProgress: {OrderStatusPlateReady, OrderStatusCompleted, OrderStatusProblem},
	OrderStatusPlateReady:      {OrderStatusCompleted, OrderStatusProblem},
	OrderStatusCompleted:       {},
	OrderStatusProblem:         {},
}

func (s OrderStatus) String() string { return string(s) }

// CanTransition reports whether the state machine permits moving from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusCreated, OrderStatusAwaitingPayment, OrderStatusPaid,
		OrderStatusPlateInProgress, OrderStatusPlateReady, OrderStatusCompleted, OrderStatusProblem:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

// PaymentType tags an immutable money posting against an order.
type PaymentType string

const (
	PaymentTypeStateDuty       PaymentType = "STATE_DUTY"
	PaymentTypeIncomePavilion1 PaymentType = "INCOME_PAVILION1"
	PaymentTypeIncomePavilion2 PaymentType = "INCOME_PAVILION2"
)

func (t PaymentType) String() string { return string(t) }

func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentTypeStateDuty, PaymentTypeIncomePavilion1, PaymentTypeIncomePavilion2:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("unknown payment type: %q", s)
}

// ShiftStatus is the cash shift state: a shift is either OPEN or CLOSED.
type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "OPEN"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

func (s ShiftStatus) String() string { return string(s) }

func ParseShiftStatus(s string) (ShiftStatus, error) {
	switch ShiftStatus(s) {
	case ShiftStatusOpen, ShiftStatusClosed:
		return ShiftStatus(s), nil
	}
	return "", fmt.Errorf("unknown shift status: %q", s)
}

// EmployeeRole controls pavilion and resource access.
type EmployeeRole string

const (
	RoleAdmin         EmployeeRole = "ROLE_ADMIN"
	RoleManager       EmployeeRole = "ROLE_MANAGER"
	RoleOperator      EmployeeRole = "ROLE_OPERATOR"
	RolePlateOperator EmployeeRole = "ROLE_PLATE_OPERATOR"
)

func (r EmployeeRole) String() string { return string(r) }

func ParseEmployeeRole(s string) (EmployeeRole, error) {
	switch EmployeeRole(s) {
	case RoleAdmin, RoleManager, RoleOperator, RolePlateOperator:
		return EmployeeRole(s), nil
	}
	return "", fmt.Errorf("unknown employee role: %q", s)
}

// CanAccessPavilion reports whether the role may work with the given
// pavilion's orders and cash register. Operators are bound to pavilion 1,
// plate operators to pavilion 2, managers and admins to both.
func (r EmployeeRole) CanAccessPavilion(pavilion int) bool {
	switch r {
	case RoleAdmin, RoleManager:
		return pavilion == 1 || pavilion == 2
	case RoleOperator:
		return pavilion == 1
	case RolePlateOperator:
		return pavilion == 2
	}
	return false
}
