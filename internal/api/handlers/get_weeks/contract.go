package get_weeks

import (
	"github.com/m04kA/SMC-RentalService/internal/service/calendar/models"
)

type CalendarService interface {
	Weeks(month, year int) (*models.WeeksResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
