package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID сотрудника"
	msgItemNotFound       = "вещь не найдена в каталоге"
	msgItemsNotAvailable  = "часть вещей уже забронирована на выбранные даты"
	msgInvalidDates       = "некорректный период проката"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrItemsNotAvailable):
			h.logger.Warn("POST /bookings - Items not available: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondConflict(w, msgItemsNotAvailable)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: %v", err)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, staff_id=%d",
		result.Booking.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
