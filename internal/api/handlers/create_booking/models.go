package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Суммы принимаются и строкой ("50.00"), и числом
type CreateBookingRequest struct {
	CustomerID    int64            `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	PickupDate    string           `json:"pickupDate"` // "2025-10-15"
	ReturnDate    string           `json:"returnDate"`
	Items         []ItemRequest    `json:"items"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
	DepositAmount decimal.Decimal  `json:"depositAmount"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// ItemRequest HTTP request model позиции
type ItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
	Deposit *models.PaymentResponse `json:"deposit,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(staffID int64) (*createBooking.Request, error) {
	pickupDate, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, err
	}

	returnDate, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, err
	}

	items := make([]createBooking.ItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createBooking.ItemRequest{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	return &createBooking.Request{
		StaffID:       staffID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		PickupDate:    pickupDate,
		ReturnDate:    returnDate,
		Items:         items,
		TotalAmount:   r.TotalAmount,
		DepositAmount: r.DepositAmount,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: models.FromDomainBooking(resp.Booking),
		Deposit: models.FromDomainPayment(resp.Deposit),
	}
}
