package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/ledger"
)

// RentalStatus represents where the rented items are in their lifecycle
type RentalStatus string

const (
	StatusReserved  RentalStatus = "reserved"
	StatusPickedUp  RentalStatus = "picked_up"
	StatusReturned  RentalStatus = "returned"
	StatusCancelled RentalStatus = "cancelled"
)

// Booking represents a rental of one or more catalog items for a period
type Booking struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	PickupDate   time.Time
	ReturnDate   time.Time
	Status       RentalStatus

	Items         []ledger.LineItem
	TotalAmount   decimal.Decimal
	DepositAmount decimal.Decimal // cumulative sum of non-reversed payments

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	PickedUpAt         *time.Time
	ReturnedAt         *time.Time

	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance returns the remaining balance (negative on overpayment)
func (b *Booking) Balance() decimal.Decimal {
	return ledger.RecomputeBalance(b.TotalAmount, b.DepositAmount)
}

// PaymentStatus returns the derived payment status
func (b *Booking) PaymentStatus() ledger.PaymentStatus {
	return ledger.Status(b.TotalAmount, b.Balance(), b.DepositAmount)
}

// Ledger returns the booking's financial state as an editable form
func (b *Booking) Ledger() ledger.Form {
	return ledger.NewForm(b.Items, b.TotalAmount, b.DepositAmount)
}

// IsActive returns true if the booking still holds its items
func (b *Booking) IsActive() bool {
	return b.Status == StatusReserved || b.Status == StatusPickedUp
}

// CanAcceptPayment returns true if a payment may be recorded against the booking
func (b *Booking) CanAcceptPayment() bool {
	return b.Status != StatusCancelled && b.PaymentStatus() != ledger.StatusPaid
}

// CanBePickedUp returns true if the items may be handed over to the customer.
// At least some payment is required before pickup.
func (b *Booking) CanBePickedUp() bool {
	return b.Status == StatusReserved && b.PaymentStatus() != ledger.StatusPending
}

// CanBeReturned returns true if the items are with the customer
func (b *Booking) CanBeReturned() bool {
	return b.Status == StatusPickedUp
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusReserved
}

// CanBeUpdated returns true if items, dates or totals can still be edited
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusReserved
}

// ItemIDs returns the catalog item IDs on the booking
func (b *Booking) ItemIDs() []int64 {
	ids := make([]int64, len(b.Items))
	for i, item := range b.Items {
		ids[i] = item.ItemID
	}
	return ids
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate       *time.Time    // Бронирования, период которых пересекается с [StartDate, EndDate]
	EndDate         *time.Time    //
	CategoryID      *int64        // Только бронирования с вещами из категории
	CustomerID      *int64        // Только бронирования клиента
	Status          *RentalStatus // Фильтр по статусу
	IncludeInactive bool          // Включать возвращённые и отменённые
}

// ReservationWindow расширяет период проката на дни подготовки с обеих сторон.
// Вещь занята, если активное бронирование пересекается с этим окном.
func ReservationWindow(pickup, ret time.Time, prepDays int) (from, to time.Time) {
	return pickup.AddDate(0, 0, -prepDays), ret.AddDate(0, 0, prepDays)
}

// ConflictingItems возвращает запрошенные ID вещей, которые уже заняты
func ConflictingItems(requested, reserved []int64) []int64 {
	taken := make(map[int64]struct{}, len(reserved))
	for _, id := range reserved {
		taken[id] = struct{}{}
	}

	conflicts := make([]int64, 0)
	for _, id := range requested {
		if _, ok := taken[id]; ok {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts
}
