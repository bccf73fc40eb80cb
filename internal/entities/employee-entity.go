package entities

// Employee — сотрудник организации. Заводится вне бота (через админ-API),
// здесь только читается.
type Employee struct {
	ID               uint64 `json:"id"`
	TelegramID       int64  `json:"telegram_id"`
	TelegramUsername string `json:"telegram_username"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Role             string `json:"role"`
	ContactNumber    string `json:"contact_number"`
	Email            string `json:"email"`
	Location         string `json:"location"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
