package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusTooManyRequests, "Too Many Requests")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"status": float64(429), "message": "Too Many Requests"}, body)
}

func TestWriteKeepsEmptyList(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusOK, Envelope{Status: http.StatusOK, Data: []string{}})

	assert.JSONEq(t, `{"status":200,"data":[]}`, rec.Body.String())
}
