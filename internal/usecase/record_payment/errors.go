package record_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("record_payment: booking not found")

	// ErrBookingCancelled возвращается при оплате отменённого бронирования
	ErrBookingCancelled = errors.New("record_payment: booking is cancelled")

	// ErrBookingAlreadyPaid возвращается, когда бронирование уже полностью оплачено
	ErrBookingAlreadyPaid = errors.New("record_payment: booking is already paid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_payment: internal error")
)
