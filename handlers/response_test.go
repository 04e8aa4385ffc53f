package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseJSON(t *testing.T) {
	t.Run("writes body, status, and content type", func(t *testing.T) {
		rec := httptest.NewRecorder()

		ResponseJSON(rec, http.StatusCreated, map[string]string{"orderId": "42"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"orderId":"42"}`, rec.Body.String())
	})

	t.Run("camelCase struct tags drive field names", func(t *testing.T) {
		rec := httptest.NewRecorder()

		ResponseJSON(rec, http.StatusOK, struct {
			OrderStatus string `json:"orderStatus"`
			SlotID      string `json:"slotId"`
		}{OrderStatus: "ACCEPTED", SlotID: "coffee"})

		assert.JSONEq(t, `{"orderStatus":"ACCEPTED","slotId":"coffee"}`, rec.Body.String())
	})

	t.Run("unencodable value yields 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		ResponseJSON(rec, http.StatusOK, func() {})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
