package service

import "fmt"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeUnauthorized  = "UNAUTHORIZED"
)

// BusinessError - ошибка бизнес-логики с машинным кодом и деталями для клиента
type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

// NewValidationError: reason - машинный код вида error.empty_title,
// по нему клиент подсвечивает конкретное поле
func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("Неверное значение поля '%s'", field),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

// NewNotFound: отсутствующая и чужая задача отвечают одинаково,
// существование чужих записей не раскрывается
func NewNotFound(resource, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s не найден(а)", resource, id),
		Details: map[string]any{
			"resource": resource,
			"reason":   fmt.Sprintf("error.%s_not_found", resource),
		},
	}
}

func NewAlreadyExists(resource, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf("%s уже существует", resource),
		Details: map[string]any{
			"resource": resource,
			"reason":   reason,
		},
	}
}

func NewUnauthorized(reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeUnauthorized,
		Message: "Неверные учётные данные",
		Details: map[string]any{
			"reason": reason,
		},
	}
}
