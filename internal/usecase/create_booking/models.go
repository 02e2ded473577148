package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	StaffID       int64                // ID сотрудника, оформляющего прокат
	CustomerID    int64                // ID клиента
	CustomerName  string               // Имя клиента (денормализовано)
	PickupDate    time.Time            // Дата выдачи
	ReturnDate    time.Time            // Дата возврата
	Items         []ItemRequest        // Вещи; повторяющиеся ID объединяются
	TotalAmount   *decimal.Decimal     // Ручная итоговая сумма (учитывается только без вещей)
	DepositAmount decimal.Decimal      // Предоплата при оформлении
	PaymentMethod domain.PaymentMethod // Способ предоплаты
	Notes         *string              // Заметки (опционально)
}

// ItemRequest запрошенная вещь
type ItemRequest struct {
	ItemID   int64
	Quantity int
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Deposit *domain.Payment // nil, если предоплаты не было
}
