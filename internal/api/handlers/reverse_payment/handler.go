package reverse_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	reversePayment "github.com/m04kA/SMC-RentalService/internal/usecase/reverse_payment"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidPaymentID = "некорректный ID платежа"
	msgMissingUserID    = "отсутствует ID сотрудника"
	msgBookingNotFound  = "бронирование не найдено"
	msgPaymentNotFound  = "платёж не найден"
	msgAlreadyReversed  = "платёж уже отменён"
)

type Handler struct {
	useCase ReversePaymentUseCase
	logger  Logger
}

func NewHandler(useCase ReversePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}/payments/{paymentId}
// Платёж не удаляется, а помечается отменённым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := handlers.PathID(vars, "bookingId")
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	paymentID, err := handlers.PathID(vars, "paymentId")
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reversePayment.Request{
		BookingID: bookingID,
		PaymentID: paymentID,
		StaffID:   staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reversePayment.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reversePayment.ErrPaymentNotFound):
			h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Payment not found: booking_id=%d, payment_id=%d",
				bookingID, paymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, reversePayment.ErrPaymentAlreadyReversed):
			h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Already reversed: payment_id=%d", paymentID)
			handlers.RespondConflict(w, msgAlreadyReversed)

		case errors.Is(err, reversePayment.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id}/payments/{paymentId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPaymentID)

		default:
			h.logger.Error("DELETE /bookings/{id}/payments/{paymentId} - Failed to reverse payment: payment_id=%d, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/payments/{paymentId} - Payment reversed: booking_id=%d, payment_id=%d, staff_id=%d",
		bookingID, paymentID, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
