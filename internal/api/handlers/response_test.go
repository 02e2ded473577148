package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Amount string `json:"amount"`
	}

	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"10.00"}`))
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, "10.00", p.Amount)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"10.00","extra":1}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &p), ErrEmptyBody)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "занято"}, body)
}

func TestPathID(t *testing.T) {
	id, err := PathID(map[string]string{"bookingId": "15"}, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	_, err = PathID(map[string]string{"bookingId": "-1"}, "bookingId")
	assert.Error(t, err)

	_, err = PathID(map[string]string{}, "bookingId")
	assert.Error(t, err)
}

func TestWeekPath(t *testing.T) {
	month, year, week, err := WeekPath(map[string]string{"month": "1", "year": "2024", "week": "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2024, 2}, []int{month, year, week})

	_, _, _, err = WeekPath(map[string]string{"month": "1", "year": "2024", "week": "x"})
	assert.Error(t, err)
}
