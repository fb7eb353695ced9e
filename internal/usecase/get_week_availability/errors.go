package get_week_availability

import "errors"

var (
	// ErrCoachNotFound возвращается, когда тренер не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidWeekWindow возвращается, когда окно дат не является
	// семью последовательными датами по возрастанию (ошибка вызывающего кода)
	ErrInvalidWeekWindow = errors.New("week window must be exactly 7 consecutive ascending dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
