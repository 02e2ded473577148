package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	StaffID            int64  `json:"staffId"`
	CancellationReason string `json:"cancellationReason"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	CategoryID      *int64     `json:"categoryId,omitempty"`      // Фильтр по категории вещей
	CustomerID      *int64     `json:"customerId,omitempty"`      // Фильтр по клиенту
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить возвращённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CategoryID:      r.CategoryID,
		CustomerID:      r.CustomerID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseRentalStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
// Денежные суммы - строки с двумя знаками после запятой ("50.00")
type BookingResponse struct {
	ID               int64          `json:"id"`
	CustomerID       int64          `json:"customerId"`
	CustomerName     string         `json:"customerName"`
	PickupDate       string         `json:"pickupDate"` // "2025-10-15"
	ReturnDate       string         `json:"returnDate"`
	Status           string         `json:"status"`
	Items            []ItemResponse `json:"items"`
	TotalAmount      string         `json:"totalAmount"`
	DepositAmount    string         `json:"depositAmount"`
	RemainingBalance string         `json:"remainingBalance"` // Может быть отрицательным при переплате
	PaymentStatus    string         `json:"paymentStatus"`    // pending | partial | paid
	Notes            *string        `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	PickedUpAt         *string `json:"pickedUpAt,omitempty"`
	ReturnedAt         *string `json:"returnedAt,omitempty"`

	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemResponse позиция бронирования
type ItemResponse struct {
	ItemID     int64  `json:"itemId"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Amount     string `json:"amount"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"bookingId"`
	Amount     string    `json:"amount"`
	Method     string    `json:"method"`
	Note       *string   `json:"note,omitempty"`
	ReceivedBy int64     `json:"receivedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	ReversedAt *string   `json:"reversedAt,omitempty"`
}

// PaymentListResponse ответ со списком платежей бронирования
type PaymentListResponse struct {
	Payments      []PaymentResponse `json:"payments"`
	DepositAmount string            `json:"depositAmount"` // Сумма действующих платежей
}

// PaymentPreviewResponse предпросмотр остатка после платежа
type PaymentPreviewResponse struct {
	BookingID      int64  `json:"bookingId"`
	Amount         string `json:"amount"`
	CurrentBalance string `json:"currentBalance"`
	RemainingAfter string `json:"remainingAfter"` // Не меньше нуля
	PaymentStatus  string `json:"paymentStatus"`
}

// Методы конвертации

// Money форматирует денежную сумму для ответа
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		PickupDate:         b.PickupDate.Format(domain.DateFormat),
		ReturnDate:         b.ReturnDate.Format(domain.DateFormat),
		Status:             string(b.Status),
		Items:              make([]ItemResponse, len(b.Items)),
		TotalAmount:        Money(b.TotalAmount),
		DepositAmount:      Money(b.DepositAmount),
		RemainingBalance:   Money(b.Balance()),
		PaymentStatus:      string(b.PaymentStatus()),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        formatTime(b.CancelledAt),
		PickedUpAt:         formatTime(b.PickedUpAt),
		ReturnedAt:         formatTime(b.ReturnedAt),
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for i, item := range b.Items {
		resp.Items[i] = ItemResponse{
			ItemID:     item.ItemID,
			CategoryID: item.CategoryID,
			Name:       item.Name,
			UnitPrice:  Money(item.UnitPrice),
			Quantity:   item.Quantity,
			Amount:     Money(item.Amount()),
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainPayment конвертирует платёж в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:         p.ID,
		BookingID:  p.BookingID,
		Amount:     Money(p.Amount),
		Method:     string(p.Method),
		Note:       p.Note,
		ReceivedBy: p.ReceivedBy,
		CreatedAt:  p.CreatedAt,
		ReversedAt: formatTime(p.ReversedAt),
	}
}

// FromDomainPaymentList конвертирует платежи в DTO и считает сумму действующих
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	deposit := decimal.Zero
	for _, p := range payments {
		resp.Payments = append(resp.Payments, *FromDomainPayment(p))
		if !p.IsReversed() {
			deposit = deposit.Add(p.Amount)
		}
	}
	resp.DepositAmount = Money(deposit)

	return resp
}

// formatTime конвертирует время в строку ISO 8601
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
