package dto

type OpenShiftRequestDTO struct {
	Pavilion       int    `json:"pavilion" validate:"required" example:"1"`
	OpeningBalance string `json:"opening_balance" example:"500"`
}

type CloseShiftRequestDTO struct {
	ClosingBalance string `json:"closing_balance" validate:"required" example:"12000"`
}

type ShiftDTO struct {
	ID             int     `json:"id" example:"3"`
	Pavilion       int     `json:"pavilion" example:"1"`
	Status         string  `json:"status" example:"OPEN"`
	OpenedByID     int     `json:"opened_by_id" example:"5"`
	OpenedAt       string  `json:"opened_at" example:"2026-08-30T09:00:00+03:00"`
	ClosedByID     *int    `json:"closed_by_id,omitempty" example:"5"`
	ClosedAt       *string `json:"closed_at,omitempty" example:"2026-08-30T18:00:00+03:00"`
	OpeningBalance string  `json:"opening_balance" example:"500"`
	ClosingBalance *string `json:"closing_balance,omitempty" example:"12000"`
}

type CurrentShiftResponseDTO struct {
	Shift    *ShiftDTO `json:"shift"`
	Payments string    `json:"payments" example:"4200"`
}

type CashRowRequestDTO struct {
	ClientName  string `json:"client_name" example:"Иванов Иван"`
	Application string `json:"application" example:"500"`
	StateDuty   string `json:"state_duty" example:"2000"`
	DKP         string `json:"dkp" example:"500"`
	Insurance   string `json:"insurance" example:"0"`
	Plates      string `json:"plates" example:"1500"`
	Total       string `json:"total" example:"4500"`
}

type CashRowDTO struct {
	ID          int    `json:"id" example:"8"`
	ClientName  string `json:"client_name" example:"Иванов Иван"`
	Application string `json:"application" example:"500"`
	StateDuty   string `json:"state_duty" example:"2000"`
	DKP         string `json:"dkp" example:"500"`
	Insurance   string `json:"insurance" example:"0"`
	Plates      string `json:"plates" example:"1500"`
	Total       string `json:"total" example:"4500"`
}

type PlateCashRowRequestDTO struct {
	ClientName string `json:"client_name" example:"Иванов Иван"`
	Amount     string `json:"amount" validate:"required" example:"1500"`
}

type PlateCashRowDTO struct {
	ID         int    `json:"id" example:"9"`
	ClientName string `json:"client_name" example:"Иванов Иван"`
	Amount     string `json:"amount" example:"-1500"`
	CreatedAt  string `json:"created_at" example:"2026-08-30T12:00:00+03:00"`
}

type PayoutDTO struct {
	ID         int    `json:"id" example:"1"`
	OrderID    int    `json:"order_id" example:"10"`
	ClientName string `json:"client_name" example:"Иванов Иван"`
	Amount     string `json:"amount" example:"2200"`
	CreatedAt  string `json:"created_at" example:"2026-08-30T12:00:00+03:00"`
}

type SettlePayoutsResponseDTO struct {
	Total string `json:"total" example:"1500"`
}
