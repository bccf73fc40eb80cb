package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "equipment-system/pkg/errors"
)

// Validator — адаптер go-playground/validator под echo.Validator.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Ошибка валидации запроса", err, nil)
	}
	return nil
}
