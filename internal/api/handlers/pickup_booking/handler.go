package pickup_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID сотрудника"
	msgNotFound         = "бронирование не найдено"
	msgConflict         = "вещи нельзя выдать, бронирование не в статусе reserved или не внесена предоплата"
)

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

// Handle PATCH /api/v1/bookings/{bookingId}/pickup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/pickup - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/pickup - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.Pickup(r.Context(), bookingID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/pickup - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotPickup):
			h.logger.Warn("PATCH /bookings/{id}/pickup - Transition rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PATCH /bookings/{id}/pickup - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/pickup - Booking picked up: booking_id=%d, staff_id=%d", bookingID, staffID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
