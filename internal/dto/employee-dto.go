package dto

type CreateEmployeeDTO struct {
	TelegramID       int64  `json:"telegram_id" validate:"required"`
	TelegramUsername string `json:"telegram_username" validate:"required"`
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Role             string `json:"role" validate:"required"`
	ContactNumber    string `json:"contact_number" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Location         string `json:"location" validate:"required,equipment_location"`
}
