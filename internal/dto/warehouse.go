package dto

type StockResponseDTO struct {
	Quantity  int    `json:"quantity" example:"25"`
	Reserved  int    `json:"reserved" example:"4"`
	Available int    `json:"available" example:"21"`
	UpdatedAt string `json:"updated_at" example:"2026-08-30T12:00:00+03:00"`
}

type AddStockRequestDTO struct {
	Quantity int `json:"quantity" validate:"required,min=1" example:"20"`
}

type DefectCountResponseDTO struct {
	Month int `json:"month" example:"4"`
}
