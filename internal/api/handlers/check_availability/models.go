package check_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string  `json:"date"`
	ReturnDate      string  `json:"returnDate"`
	ReservedItemIDs []int64 `json:"reservedItemIds"`
	PrepDays        int     `json:"prepDays"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	ids := resp.ReservedItemIDs
	if ids == nil {
		ids = []int64{}
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ReturnDate:      resp.ReturnDate.Format(domain.DateFormat),
		ReservedItemIDs: ids,
		PrepDays:        resp.PrepDays,
	}
}
