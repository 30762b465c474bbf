package dto

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required" example:"operator1"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponseDTO struct {
	Token    string      `json:"token"`
	Employee EmployeeDTO `json:"employee"`
}

type EmployeeDTO struct {
	ID   int    `json:"id" example:"5"`
	Name string `json:"name" example:"Смирнова А."`
	Role string `json:"role" example:"ROLE_OPERATOR"`
}
