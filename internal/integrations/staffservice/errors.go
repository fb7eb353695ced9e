package staffservice

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден или не активен
	ErrCoachNotFound = errors.New("coach not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
