package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrLoadLogDisabled возвращается, когда журнал загрузок не настроен
	ErrLoadLogDisabled = errors.New("availability: load journal is disabled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
