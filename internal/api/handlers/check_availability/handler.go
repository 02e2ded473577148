package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
)

const (
	msgMissingDate      = "отсутствует параметр date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBookingID = "некорректный ID исключаемого бронирования"
	msgInvalidPeriod    = "дата возврата раньше даты выдачи"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/check-availability?date=2025-10-15
// Query params: returnDate, excludeBookingId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/check-availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/check-availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	returnDate, err := handlers.OptionalDate(query.Get("returnDate"))
	if err != nil {
		h.logger.Warn("GET /bookings/check-availability - Invalid return date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	excludeID, err := handlers.OptionalID(query.Get("excludeBookingId"))
	if err != nil {
		h.logger.Warn("GET /bookings/check-availability - Invalid excludeBookingId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Date:       date,
		ReturnDate: returnDate,
		ExcludeID:  excludeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDate):
			h.logger.Warn("GET /bookings/check-availability - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings/check-availability - Failed to check availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/check-availability - Availability checked: date=%s, reserved=%d",
		dateStr, len(result.ReservedItemIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
