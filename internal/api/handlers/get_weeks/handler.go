package get_weeks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/calendar"
)

const (
	msgInvalidMonth = "некорректный месяц"
	msgInvalidYear  = "некорректный год"
	msgInvalidInput = "месяц должен быть от 1 до 12"
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

// Handle GET /api/v1/calendar/weeks/{month}/{year}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	month, err := handlers.PathInt(vars, "month")
	if err != nil {
		h.logger.Warn("GET /calendar/weeks/{month}/{year} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	year, err := handlers.PathInt(vars, "year")
	if err != nil {
		h.logger.Warn("GET /calendar/weeks/{month}/{year} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	result, err := h.service.Weeks(month, year)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/weeks/{month}/{year} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/weeks/{month}/{year} - Failed to build weeks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
