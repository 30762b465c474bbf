package dto

type RevenueSummaryDTO struct {
	From          string `json:"from" example:"2026-08-30T00:00:00+03:00"`
	To            string `json:"to" example:"2026-08-30T18:00:00+03:00"`
	Total         string `json:"total" example:"4501"`
	StateDuty     string `json:"state_duty" example:"2000"`
	Pavilion1     string `json:"pavilion1" example:"1001"`
	Pavilion2     string `json:"pavilion2" example:"1500"`
	OrdersCount   int    `json:"orders_count" example:"2"`
	AverageCheque string `json:"average_cheque" example:"2250.5"`
}

type EmployeeSummaryDTO struct {
	EmployeeID  *int   `json:"employee_id,omitempty" example:"5"`
	Name        string `json:"name" example:"Смирнова А."`
	OrdersCount int    `json:"orders_count" example:"12"`
	Total       string `json:"total" example:"24000"`
}

type PriceListItemDTO struct {
	Template string `json:"template" example:"number.docx"`
	Label    string `json:"label" example:"Изготовление госномера"`
	Price    string `json:"price" example:"1500"`
}
