package dto

// CreateClientDTO: Что клиент присылает для создания.
type CreateClientDTO struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,phone_format"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ClientDTO: Что сервер отправляет клиенту в ответ.
type ClientDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}
