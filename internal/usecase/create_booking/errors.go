package create_booking

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена в каталоге
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemsNotAvailable возвращается, когда часть вещей занята в выбранный период
	ErrItemsNotAvailable = errors.New("create_booking: items are not available for the period")

	// ErrInvalidDates возвращается при некорректном периоде проката
	ErrInvalidDates = errors.New("create_booking: invalid rental dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
