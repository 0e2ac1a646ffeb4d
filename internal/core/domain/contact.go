package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest - данные формы обратной связи.
// Теги validate проверяются пакетом validation перед публикацией.
type ContactRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message" validate:"required"`
	PropertyID string `json:"property_id"`
	Agreement  bool   `json:"agreement" validate:"agreement"`
}

// AcceptedContactRequest - заявка, прошедшая валидацию и отправленная дальше.
type AcceptedContactRequest struct {
	ID         uuid.UUID
	Request    ContactRequest
	ReceivedAt time.Time
}
