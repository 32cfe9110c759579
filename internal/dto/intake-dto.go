package dto

// IntakeRequestDTO - публичная заявка с сайта: имя, телефон, устройство, проблема.
type IntakeRequestDTO struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,phone_format"`
	Model string `json:"model" validate:"required"`
	Issue string `json:"issue" validate:"required"`
}

// IntakeResponseDTO: номер заявки показываем отправителю.
type IntakeResponseDTO struct {
	OrderID string `json:"order_id"`
}
