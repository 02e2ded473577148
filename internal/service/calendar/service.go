package calendar

import (
	"context"
	"errors"
	"fmt"

	cal "github.com/m04kA/SMC-RentalService/internal/calendar"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
	bookingModels "github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RentalService/internal/service/calendar/models"
)

// Service сервис календарных представлений: недели месяца, дни недели, бронирования недели
type Service struct {
	bookings BookingLister
	logger   Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(bookings BookingLister, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		logger:   logger,
	}
}

// Weeks возвращает четыре недели месяца
func (s *Service) Weeks(month, year int) (*models.WeeksResponse, error) {
	weeks, err := cal.WeeksInMonth(year, month)
	if err != nil {
		s.logger.Warn("Weeks: month=%d, year=%d: %v", month, year, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp := &models.WeeksResponse{
		Month: month,
		Year:  year,
		Weeks: make([]models.WeekResponse, len(weeks)),
	}
	for i, w := range weeks {
		resp.Weeks[i] = models.FromWeek(w)
	}

	return resp, nil
}

// Days возвращает все дни недели с номером week
func (s *Service) Days(month, year, week int) (*models.DaysResponse, error) {
	w, err := s.week(month, year, week)
	if err != nil {
		return nil, err
	}

	days, err := cal.DaysInWeek(w.Start, w.End)
	if err != nil {
		s.logger.Error("Days: week %d of %d/%d has inverted range: %v", week, month, year, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp := &models.DaysResponse{
		Week: models.FromWeek(w),
		Days: make([]string, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = d.Format(domain.DateFormat)
	}

	return resp, nil
}

// WeekBookings возвращает активные бронирования, пересекающиеся с неделей
// Опционально только с вещами из категории categoryID
func (s *Service) WeekBookings(ctx context.Context, month, year, week int, categoryID *int64) (*bookingModels.BookingListResponse, error) {
	w, err := s.week(month, year, week)
	if err != nil {
		return nil, err
	}

	s.logger.Info("WeekBookings: week %d of %d/%d, %s - %s",
		week, month, year, w.Start.Format(domain.DateFormat), w.End.Format(domain.DateFormat))

	resp, err := s.bookings.List(ctx, &bookingModels.ListBookingsRequest{
		StartDate:  &w.Start,
		EndDate:    &w.End,
		CategoryID: categoryID,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return resp, nil
}

func (s *Service) week(month, year, number int) (cal.Week, error) {
	w, err := cal.WeekByNumber(year, month, number)
	if err != nil {
		s.logger.Warn("week: month=%d, year=%d, week=%d: %v", month, year, number, err)
		return cal.Week{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return w, nil
}
