package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	updateBooking "github.com/m04kA/SMC-RentalService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Даты, позиции и заметки заменяются целиком
type UpdateBookingRequest struct {
	PickupDate  string           `json:"pickupDate"`
	ReturnDate  string           `json:"returnDate"`
	Items       []ItemRequest    `json:"items"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

type ItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, staffID int64) (*updateBooking.Request, error) {
	pickupDate, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, err
	}

	returnDate, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, err
	}

	items := make([]updateBooking.ItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, updateBooking.ItemRequest{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	return &updateBooking.Request{
		BookingID:   bookingID,
		StaffID:     staffID,
		PickupDate:  pickupDate,
		ReturnDate:  returnDate,
		Items:       items,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}, nil
}
