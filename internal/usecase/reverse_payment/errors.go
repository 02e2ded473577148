package reverse_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reverse_payment: booking not found")

	// ErrPaymentNotFound возвращается, когда платёж не найден в бронировании
	ErrPaymentNotFound = errors.New("reverse_payment: payment not found")

	// ErrPaymentAlreadyReversed возвращается при повторной отмене платежа
	ErrPaymentAlreadyReversed = errors.New("reverse_payment: payment is already reversed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reverse_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reverse_payment: internal error")
)
