package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Сущности
	ErrClientNotFound = fmt.Errorf("клиент не найден")
	ErrPartNotFound   = fmt.Errorf("запчасть не найдена")
	ErrOrderNotFound  = fmt.Errorf("заказ не найден")

	// Склад
	ErrOutOfStock    = fmt.Errorf("нет в наличии")
	ErrNegativeStock = fmt.Errorf("остаток не может быть отрицательным")
)

// HttpError несёт код ответа и сообщение для пользователя,
// внутренняя ошибка и контекст идут только в логи.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
