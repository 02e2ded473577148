package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на изменение бронирования
// Позиции, даты и заметки заменяются целиком
type Request struct {
	BookingID   int64
	StaffID     int64
	PickupDate  time.Time
	ReturnDate  time.Time
	Items       []ItemRequest
	TotalAmount *decimal.Decimal // Ручная итоговая сумма (учитывается только без вещей)
	Notes       *string
}

// ItemRequest запрошенная вещь
type ItemRequest struct {
	ItemID   int64
	Quantity int
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking *domain.Booking
}
