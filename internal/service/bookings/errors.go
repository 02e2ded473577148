package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotPickup возвращается, когда вещи нельзя выдать (статус или нет оплаты)
	ErrCannotPickup = errors.New("booking cannot be picked up")

	// ErrCannotReturn возвращается, когда вещи нельзя принять обратно
	ErrCannotReturn = errors.New("booking cannot be returned")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
