package models

import (
	"github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// WeekResponse неделя месяца (воскресенье - суббота)
type WeekResponse struct {
	Number    int    `json:"number"`    // 1..4
	StartDate string `json:"startDate"` // "2024-12-31"
	EndDate   string `json:"endDate"`
}

// WeeksResponse недели месяца
type WeeksResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Weeks []WeekResponse `json:"weeks"`
}

// DaysResponse дни недели
type DaysResponse struct {
	Week WeekResponse `json:"week"`
	Days []string     `json:"days"`
}

// FromWeek конвертирует неделю календаря в DTO
func FromWeek(w calendar.Week) WeekResponse {
	return WeekResponse{
		Number:    w.Number,
		StartDate: w.Start.Format(domain.DateFormat),
		EndDate:   w.End.Format(domain.DateFormat),
	}
}
