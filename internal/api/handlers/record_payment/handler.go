package record_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	recordPayment "github.com/m04kA/SMC-RentalService/internal/usecase/record_payment"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgNotFound           = "бронирование не найдено"
	msgCancelled          = "бронирование отменено, платёж невозможен"
	msgAlreadyPaid        = "бронирование уже полностью оплачено"
	msgInvalidInput       = "некорректная сумма или способ оплаты"
)

type Handler struct {
	useCase RecordPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RecordPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/payments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payments - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, recordPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/payments - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, recordPayment.ErrBookingAlreadyPaid):
			h.logger.Warn("POST /bookings/{id}/payments - Booking already paid: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, recordPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/payments - Failed to record payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payments - Payment recorded: booking_id=%d, payment_id=%d, amount=%s, staff_id=%d",
		bookingID, result.Payment.ID, result.Payment.Amount.StringFixed(2), staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
