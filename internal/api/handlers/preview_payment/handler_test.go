package preview_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

type fakeService struct {
	calls int
	got   decimal.Decimal
	err   error
}

func (f *fakeService) PreviewPayment(_ context.Context, bookingID int64, amount decimal.Decimal) (*models.PaymentPreviewResponse, error) {
	f.calls++
	f.got = amount
	if f.err != nil {
		return nil, f.err
	}
	return &models.PaymentPreviewResponse{
		BookingID:      bookingID,
		Amount:         models.Money(amount),
		CurrentBalance: "80.00",
		RemainingAfter: "50.00",
		PaymentStatus:  "partial",
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, bookingID, amount string) *httptest.ResponseRecorder {
	target := "/api/v1/bookings/" + bookingID + "/payment-preview?amount=" + url.QueryEscape(amount)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Preview(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "4", "30.00")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.got.Equal(decimal.NewFromInt(30)))

	var resp models.PaymentPreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.BookingID)
	assert.Equal(t, "30.00", resp.Amount)
	assert.Equal(t, "50.00", resp.RemainingAfter)
}

func TestHandler_RejectsAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "missing", amount: ""},
		{name: "not a number", amount: "thirty"},
		{name: "negative", amount: "-5"},
		{name: "fractional cents", amount: "10.005"},
		{name: "above limit", amount: "10000000000"},
		{name: "huge exponent", amount: "1e5000000"},
		{name: "tiny exponent", amount: "1e-5000000"},
		{name: "too long", amount: "1" + strings.Repeat("0", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			h := NewHandler(svc, nopLogger{})

			rec := doRequest(h, "4", tt.amount)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, msgInvalidAmount, resp.Message)
			assert.Less(t, rec.Body.Len(), 256)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		svcErr     error
		wantStatus int
	}{
		{name: "bad booking id", bookingID: "abc", wantStatus: http.StatusBadRequest},
		{name: "not found", bookingID: "4", svcErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", bookingID: "4", svcErr: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", bookingID: "4", svcErr: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, nopLogger{})

			rec := doRequest(h, tt.bookingID, "30")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
