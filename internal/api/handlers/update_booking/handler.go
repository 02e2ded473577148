package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-RentalService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgNotFound           = "бронирование не найдено"
	msgNotEditable        = "бронирование уже нельзя изменить"
	msgItemNotFound       = "вещь не найдена в каталоге"
	msgItemsNotAvailable  = "часть вещей уже забронирована на выбранные даты"
	msgInvalidDates       = "некорректный период проката"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, staffID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrBookingNotEditable):
			h.logger.Warn("PUT /bookings/{id} - Booking not editable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateBooking.ErrItemsNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Items not available: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgItemsNotAvailable)

		case errors.Is(err, updateBooking.ErrItemNotFound):
			h.logger.Warn("PUT /bookings/{id} - Item not found: %v", err)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, updateBooking.ErrInvalidDates):
			h.logger.Warn("PUT /bookings/{id} - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, staff_id=%d", bookingID, staffID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
