package dto

import "github.com/snekrasov/regcenter/internal/domain"

type CreateOrderRequestDTO struct {
	StateDutyAmount string           `json:"state_duty_amount" example:"2000"`
	IncomePavilion1 string           `json:"income_pavilion1" example:"500"`
	IncomePavilion2 string           `json:"income_pavilion2" example:"1500"`
	ServiceType     string           `json:"service_type" example:"registration"`
	FormData        *domain.FormData `json:"form_data"`
}

type OrderResponseDTO struct {
	ID              int              `json:"id" example:"10"`
	PublicID        string           `json:"public_id" example:"6f1f7d0e-4b7a-4a57-9a44-8d7f9c2b3a10"`
	Status          string           `json:"status" example:"PAID"`
	TotalAmount     string           `json:"total_amount" example:"3500"`
	StateDutyAmount string           `json:"state_duty_amount" example:"2000"`
	IncomePavilion1 string           `json:"income_pavilion1" example:"0"`
	IncomePavilion2 string           `json:"income_pavilion2" example:"1500"`
	NeedPlate       bool             `json:"need_plate" example:"true"`
	ServiceType     string           `json:"service_type,omitempty" example:"registration"`
	FormData        *domain.FormData `json:"form_data,omitempty"`
	CreatedAt       string           `json:"created_at" example:"2026-08-30T10:00:00+03:00"`
	UpdatedAt       string           `json:"updated_at" example:"2026-08-30T10:05:00+03:00"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"PLATE_IN_PROGRESS"`
}

type PayExtraRequestDTO struct {
	Amount string `json:"amount" validate:"required" example:"700"`
}

type PaymentDTO struct {
	ID        int    `json:"id" example:"1"`
	Amount    string `json:"amount" example:"2000"`
	Type      string `json:"type" example:"STATE_DUTY"`
	ShiftID   *int   `json:"shift_id,omitempty" example:"7"`
	CreatedAt string `json:"created_at" example:"2026-08-30T10:05:00+03:00"`
}

type OrderPaymentsResponseDTO struct {
	Payments []PaymentDTO `json:"payments"`
	Debt     string       `json:"debt" example:"0"`
}

type FormHistoryDTO struct {
	ID        int              `json:"id" example:"1"`
	OrderID   *int             `json:"order_id,omitempty" example:"10"`
	FormData  *domain.FormData `json:"form_data"`
	CreatedAt string           `json:"created_at" example:"2026-08-30T10:05:00+03:00"`
}
