// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations "собирает" все наши кастомные правила валидации
// и регистрирует их в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_format", isPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// isPhoneNumber намеренно либеральное: клиенты диктуют номера как попало,
// нормализации нет (поиск по телефону идёт по точному совпадению строки).
func isPhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[\d\s()-]{5,20}$`)
	return re.MatchString(fl.Field().String())
}
