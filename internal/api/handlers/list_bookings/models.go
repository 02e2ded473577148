package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	startDate, err := handlers.OptionalDate(query.Get("start"))
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}
	req.StartDate = startDate

	endDate, err := handlers.OptionalDate(query.Get("end"))
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}
	req.EndDate = endDate

	categoryID, err := handlers.OptionalID(query.Get("categoryId"))
	if err != nil {
		return nil, fmt.Errorf("invalid categoryId: %w", err)
	}
	req.CategoryID = categoryID

	customerID, err := handlers.OptionalID(query.Get("customerId"))
	if err != nil {
		return nil, fmt.Errorf("invalid customerId: %w", err)
	}
	req.CustomerID = customerID

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
