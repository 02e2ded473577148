package record_payment

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	recordPayment "github.com/m04kA/SMC-RentalService/internal/usecase/record_payment"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"` // cash | card | transfer
	Note   *string         `json:"note,omitempty"`
}

// RecordPaymentResponse HTTP response model
type RecordPaymentResponse struct {
	Payment        *models.PaymentResponse `json:"payment"`
	Booking        *models.BookingResponse `json:"booking"`
	RemainingAfter string                  `json:"remainingAfter"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RecordPaymentRequest) ToUseCaseRequest(bookingID, staffID int64) *recordPayment.Request {
	return &recordPayment.Request{
		BookingID: bookingID,
		StaffID:   staffID,
		Amount:    r.Amount,
		Method:    domain.PaymentMethod(r.Method),
		Note:      r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordPayment.Response) *RecordPaymentResponse {
	return &RecordPaymentResponse{
		Payment:        models.FromDomainPayment(resp.Payment),
		Booking:        models.FromDomainBooking(resp.Booking),
		RemainingAfter: models.Money(resp.RemainingAfter),
	}
}
