package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int          `db:"id"`
	Name         string       `db:"name"`
	Role         EmployeeRole `db:"role"`
	TelegramID   *int64       `db:"telegram_id"`
	Login        string       `db:"login"`
	PasswordHash string       `db:"password_hash"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
}

// OrderDocument is one priced document line inside an order form.
type OrderDocument struct {
	Template string          `json:"template"`
	Label    string          `json:"label,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

// FormData is the client/vehicle form captured at intake. It is stored as
// JSONB next to the order and snapshotted into form history on payment.
type FormData struct {
	ClientFIO       string `json:"client_fio,omitempty"`
	ClientLegalName string `json:"client_legal_name,omitempty"`
	ClientPassport  string `json:"client_passport,omitempty"`
	ClientAddress   string `json:"client_address,omitempty"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ClientComment   string `json:"client_comment,omitempty"`

	SellerFIO      string `json:"seller_fio,omitempty"`
	SellerPassport string `json:"seller_passport,omitempty"`
	SellerAddress  string `json:"seller_address,omitempty"`

	TrusteeFIO      string `json:"trustee_fio,omitempty"`
	TrusteePassport string `json:"trustee_passport,omitempty"`
	TrusteeBasis    string `json:"trustee_basis,omitempty"`

	VIN         string `json:"vin,omitempty"`
	BrandModel  string `json:"brand_model,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	Year        string `json:"year,omitempty"`
	Engine      string `json:"engine,omitempty"`
	Chassis     string `json:"chassis,omitempty"`
	Body        string `json:"body,omitempty"`
	Color       string `json:"color,omitempty"`
	SRTS        string `json:"srts,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`
	PTS         string `json:"pts,omitempty"`

	DKPDate   string `json:"dkp_date,omitempty"`
	DKPNumber string `json:"dkp_number,omitempty"`
	SummaDKP  string `json:"summa_dkp,omitempty"`

	PlateQuantity int             `json:"plate_quantity,omitempty"`
	Documents     []OrderDocument `json:"documents,omitempty"`
}

// ClientName returns the display name for cash ledgers: the person's name,
// the legal-entity name, or an em dash when neither is filled in.
func (f *FormData) ClientName() string {
	if f != nil {
		if name := strings.TrimSpace(f.ClientFIO); name != "" {
			return name
		}
		if name := strings.TrimSpace(f.ClientLegalName); name != "" {
			return name
		}
	}
	return "—"
}

// PlateQty returns the number of plate blanks the order requires, at least 1.
func (f *FormData) PlateQty() int {
	if f == nil || f.PlateQuantity < 1 {
		return 1
	}
	return f.PlateQuantity
}

type Order struct {
	ID              int             `db:"id"`
	PublicID        string          `db:"public_id"`
	Status          OrderStatus     `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	StateDutyAmount decimal.Decimal `db:"state_duty_amount"`
	IncomePavilion1 decimal.Decimal `db:"income_pavilion1"`
	IncomePavilion2 decimal.Decimal `db:"income_pavilion2"`
	NeedPlate       bool            `db:"need_plate"`
	ServiceType     string          `db:"service_type"`
	FormData        *FormData       `db:"form_data"`
	EmployeeID      *int            `db:"employee_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// Payment is an immutable posting of money against an order. ShiftID is nil
// when no shift of the matching pavilion was open at posting time.
type Payment struct {
	ID         int             `db:"id"`
	OrderID    int             `db:"order_id"`
	Amount     decimal.Decimal `db:"amount"`
	Type       PaymentType     `db:"type"`
	EmployeeID *int            `db:"employee_id"`
	ShiftID    *int            `db:"shift_id"`
	CreatedAt  time.Time       `db:"created_at"`
}

type CashShift struct {
	ID             int              `db:"id"`
	Pavilion       int              `db:"pavilion"`
	OpenedByID     int              `db:"opened_by_id"`
	OpenedAt       time.Time        `db:"opened_at"`
	ClosedAt       *time.Time       `db:"closed_at"`
	ClosedByID     *int             `db:"closed_by_id"`
	OpeningBalance decimal.Decimal  `db:"opening_balance"`
	ClosingBalance *decimal.Decimal `db:"closing_balance"`
	Status         ShiftStatus      `db:"status"`
}

// CashRow is one editable line of the pavilion-1 cash register. Lifecycle
// events seed rows here, but staff correct them by hand afterwards, so the
// table is not a strict projection of payments.
type CashRow struct {
	ID          int             `db:"id"`
	ClientName  string          `db:"client_name"`
	Application decimal.Decimal `db:"application"`
	StateDuty   decimal.Decimal `db:"state_duty"`
	DKP         decimal.Decimal `db:"dkp"`
	Insurance   decimal.Decimal `db:"insurance"`
	Plates      decimal.Decimal `db:"plates"`
	Total       decimal.Decimal `db:"total"`
}

// PlateCashRow is one line of the pavilion-2 register. Amount may be
// negative, which records cash handed out.
type PlateCashRow struct {
	ID         int             `db:"id"`
	ClientName string          `db:"client_name"`
	Amount     decimal.Decimal `db:"amount"`
	CreatedAt  time.Time       `db:"created_at"`
}

// PlateStock is the singleton counter of blank plates on hand.
type PlateStock struct {
	ID        int       `db:"id"`
	Quantity  int       `db:"quantity"`
	UpdatedAt time.Time `db:"updated_at"`
}

type PlateReservation struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
}

// PlatePayout records money owed by the pavilion-1 register to the
// pavilion-2 operator for a completed plate order. PaidAt/PaidByID stay nil
// until the batch settlement runs.
type PlatePayout struct {
	ID         int             `db:"id"`
	OrderID    int             `db:"order_id"`
	ClientName string          `db:"client_name"`
	Amount     decimal.Decimal `db:"amount"`
	CreatedAt  time.Time       `db:"created_at"`
	PaidAt     *time.Time      `db:"paid_at"`
	PaidByID   *int            `db:"paid_by_id"`
}

// PlateDefect is one written-off blank. Quantity is always 1 per event; the
// column only keeps the monthly counter a plain SUM.
type PlateDefect struct {
	ID        int       `db:"id"`
	Quantity  int       `db:"quantity"`
	CreatedAt time.Time `db:"created_at"`
}

// FormHistory is a snapshot of the order form taken at payment time, used by
// staff to pre-fill the intake form for repeat clients.
type FormHistory struct {
	ID        int       `db:"id"`
	OrderID   *int      `db:"order_id"`
	FormData  *FormData `db:"form_data"`
	CreatedAt time.Time `db:"created_at"`
}
