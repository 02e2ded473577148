package get_weeks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/calendar"
	"github.com/m04kA/SMC-RentalService/internal/service/calendar/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(month, year string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	h := NewHandler(calendar.NewService(nil, nopLogger{}), nopLogger{})
	r.HandleFunc("/calendar/weeks/{month}/{year}", h.Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar/weeks/"+month+"/"+year, nil))
	return rec
}

func TestHandler_January2024(t *testing.T) {
	rec := serve("1", "2024")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.WeeksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Weeks, 4)
	assert.Equal(t, models.WeekResponse{Number: 1, StartDate: "2023-12-31", EndDate: "2024-01-06"}, resp.Weeks[0])
	assert.Equal(t, models.WeekResponse{Number: 4, StartDate: "2024-01-21", EndDate: "2024-01-27"}, resp.Weeks[3])
}

func TestHandler_BadInput(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve("13", "2024").Code)
	assert.Equal(t, http.StatusBadRequest, serve("x", "2024").Code)
	assert.Equal(t, http.StatusBadRequest, serve("1", "y").Code)
}
