package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"equipment-system/pkg/constants"
)

// RegisterCustomValidations подключает правила для фиксированных перечислений.
// Сырые значения локации и статуса проверяются здесь, до бизнес-логики.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_location", isKnownLocation); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isKnownStatus); err != nil {
		return err
	}
	return nil
}

func isKnownLocation(fl validator.FieldLevel) bool {
	_, ok := constants.ParseLocation(fl.Field().String())
	return ok
}

func isKnownStatus(fl validator.FieldLevel) bool {
	_, ok := constants.ParseStatus(fl.Field().String())
	return ok
}
