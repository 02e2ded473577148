package record_payment

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на внесение платежа
type Request struct {
	BookingID int64
	StaffID   int64 // Сотрудник, принявший деньги
	Amount    decimal.Decimal
	Method    domain.PaymentMethod
	Note      *string
}

// Response модель ответа после внесения платежа
type Response struct {
	Booking *domain.Booking // Бронирование с обновлённым депозитом
	Payment *domain.Payment
	// RemainingAfter - остаток к оплате, который показывался до платежа (не меньше нуля)
	RemainingAfter decimal.Decimal
}
