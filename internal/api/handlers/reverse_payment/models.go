package reverse_payment

import (
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	reversePayment "github.com/m04kA/SMC-RentalService/internal/usecase/reverse_payment"
)

// ReversePaymentResponse HTTP response model
type ReversePaymentResponse struct {
	Payment *models.PaymentResponse `json:"payment"`
	Booking *models.BookingResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reversePayment.Response) *ReversePaymentResponse {
	return &ReversePaymentResponse{
		Payment: models.FromDomainPayment(resp.Payment),
		Booking: models.FromDomainBooking(resp.Booking),
	}
}
