package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/previousContributions/{user_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/previousContributions/{user_id}", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/previousContributions/42", nil))
	after := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/previousContributions/{user_id}", "200"))

	assert.Equal(t, before+1, after)
}

func TestHandlerExposesDonationCounter(t *testing.T) {
	DonationsRecorded.WithLabelValues("contribution").Inc()
	ObserveDBQuery("select", time.Now())

	rec := httptest.NewRecorder()
	Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "donorlink_donations_recorded_total")
	assert.Contains(t, rec.Body.String(), "donorlink_db_query_duration_seconds")
}
