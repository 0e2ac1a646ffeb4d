package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrComparisonFull    = errors.New("comparison list is full")
	ErrFavoritesFull     = errors.New("favorites list is full")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidPropertyID = errors.New("invalid property id")
	ErrInvalidVisitorID  = errors.New("invalid visitor id")
	ErrContactDisabled   = errors.New("contact requests are not accepted")
)

// ContactValidationError содержит ошибки по каждому полю формы обратной связи.
type ContactValidationError struct {
	Fields map[string]string
}

func (e *ContactValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid contact request: " + strings.Join(parts, "; ")
}
