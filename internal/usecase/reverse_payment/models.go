package reverse_payment

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Request модель запроса на отмену платежа
type Request struct {
	BookingID int64
	PaymentID int64
	StaffID   int64
}

// Response модель ответа после отмены платежа
type Response struct {
	Booking *domain.Booking // Бронирование с уменьшенным депозитом
	Payment *domain.Payment
}
