package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingNotEditable возвращается, когда бронирование уже выдано, возвращено или отменено
	ErrBookingNotEditable = errors.New("update_booking: booking can no longer be edited")

	// ErrItemNotFound возвращается, когда вещь не найдена в каталоге
	ErrItemNotFound = errors.New("update_booking: item not found")

	// ErrItemsNotAvailable возвращается, когда часть вещей занята в выбранный период
	ErrItemsNotAvailable = errors.New("update_booking: items are not available for the period")

	// ErrInvalidDates возвращается при некорректном периоде проката
	ErrInvalidDates = errors.New("update_booking: invalid rental dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
