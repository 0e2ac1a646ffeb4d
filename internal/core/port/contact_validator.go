package port

import "catalog-service/internal/core/domain"

// ContactValidatorPort проверяет форму обратной связи.
// Ошибка валидации возвращается как *domain.ContactValidationError.
type ContactValidatorPort interface {
	Validate(req domain.ContactRequest) error
}
