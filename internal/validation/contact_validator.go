package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"catalog-service/internal/core/domain"

	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ru_translations "github.com/go-playground/validator/v10/translations/ru"
)

// Форматы те же, что проверяет форма на сайте
var (
	phoneRegex = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Сообщения показываются пользователю под полями формы
var messages = map[string]string{
	"required":  "Это поле обязательно для заполнения",
	"email":     "Введите корректный email адрес",
	"phone":     "Введите корректный номер телефона",
	"agreement": "Необходимо согласие с политикой конфиденциальности",
}

// ContactValidator проверяет форму обратной связи через go-playground/validator.
// Экземпляр кэширует информацию о структурах, поэтому создается один на приложение.
type ContactValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewContactValidator() (*ContactValidator, error) {
	locale := ru.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("ru")

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := ru_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Встроенная проверка email строже, чем на сайте, поэтому заменяем ее
	if err := validate.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register email validation: %w", err)
	}
	if err := validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register phone validation: %w", err)
	}
	if err := validate.RegisterValidation("agreement", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	}); err != nil {
		return nil, fmt.Errorf("failed to register agreement validation: %w", err)
	}

	for tag, text := range messages {
		if err := registerMessage(validate, trans, tag, text); err != nil {
			return nil, err
		}
	}

	return &ContactValidator{validate: validate, trans: trans}, nil
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	err := validate.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		return fmt.Errorf("failed to register translation for %q: %w", tag, err)
	}
	return nil
}

// Validate возвращает *domain.ContactValidationError со списком ошибок по полям.
// На каждое поле приходится одно сообщение - первое нарушенное правило.
func (v *ContactValidator) Validate(req domain.ContactRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("contact validation failed: %w", err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fe.Translate(v.trans)
	}

	return &domain.ContactValidationError{Fields: fields}
}
