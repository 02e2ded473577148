package get_week_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/calendar"
)

const (
	msgInvalidPath  = "некорректный месяц, год или номер недели"
	msgInvalidInput = "неделя должна быть от 1 до 4, месяц от 1 до 12"
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

// Handle GET /api/v1/calendar/weeks/{month}/{year}/{week}/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, year, week, err := handlers.WeekPath(mux.Vars(r))
	if err != nil {
		h.logger.Warn("GET /calendar/weeks/{month}/{year}/{week}/days - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPath)
		return
	}

	result, err := h.service.Days(month, year, week)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/weeks/{month}/{year}/{week}/days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/weeks/{month}/{year}/{week}/days - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
