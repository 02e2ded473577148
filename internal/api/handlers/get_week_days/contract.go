package get_week_days

import (
	"github.com/m04kA/SMC-RentalService/internal/service/calendar/models"
)

type CalendarService interface {
	Days(month, year, week int) (*models.DaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
