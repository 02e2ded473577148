package get_week_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/calendar"
)

const (
	msgInvalidPath       = "некорректный месяц, год или номер недели"
	msgInvalidCategoryID = "некорректный ID категории"
	msgInvalidInput      = "неделя должна быть от 1 до 4, месяц от 1 до 12"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/weeks/{month}/{year}/{week}/bookings?categoryId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, year, week, err := handlers.WeekPath(mux.Vars(r))
	if err != nil {
		h.logger.Warn("GET /calendar/weeks/{month}/{year}/{week}/bookings - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPath)
		return
	}

	categoryID, err := handlers.OptionalID(r.URL.Query().Get("categoryId"))
	if err != nil {
		h.logger.Warn("GET /calendar/weeks/{month}/{year}/{week}/bookings - Invalid categoryId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	result, err := h.service.WeekBookings(r.Context(), month, year, week, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/weeks/{month}/{year}/{week}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/weeks/{month}/{year}/{week}/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/weeks/{month}/{year}/{week}/bookings - Bookings retrieved: month=%d, year=%d, week=%d, count=%d",
		month, year, week, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
