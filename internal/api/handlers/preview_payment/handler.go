package preview_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidAmount    = "некорректная сумма платежа"
	msgNotFound         = "бронирование не найдено"
)

// maxAmountLength с запасом вмещает "-9999999999.99" в любой записи
const maxAmountLength = 32

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/payment-preview?amount=30.00
// Показывает остаток после платежа, ничего не сохраняя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/payment-preview - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	rawAmount := r.URL.Query().Get("amount")
	if len(rawAmount) > maxAmountLength {
		h.logger.Warn("GET /bookings/{id}/payment-preview - Amount too long: %d characters", len(rawAmount))
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/payment-preview - Invalid amount: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	if amount.IsNegative() || !domain.IsValidMoney(amount) {
		h.logger.Warn("GET /bookings/{id}/payment-preview - Unsupported amount: %q", rawAmount)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	preview, err := h.service.PreviewPayment(r.Context(), bookingID, amount)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/payment-preview - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/payment-preview - Invalid amount: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("GET /bookings/{id}/payment-preview - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, preview)
}
