package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestRoutesKeepRegistrationOrder(t *testing.T) {
	r := New()
	r.Get("/", "home", ok)
	r.Post("registerUser", "users.register", ok)
	r.Put("/contribute/{user_id}/{organ_id}/", "donations.contribute", ok)

	assert.Equal(t, []RouteInfo{
		{Method: http.MethodGet, Path: "/", Name: "home"},
		{Method: http.MethodPost, Path: "/registerUser", Name: "users.register"},
		{Method: http.MethodPut, Path: "/contribute/{user_id}/{organ_id}", Name: "donations.contribute"},
	}, r.Routes())
}

func TestMethodMismatchAndMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New()
	r.Put("/changePassword", "auth.change", ok, tag("a"), tag("b"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/changePassword", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a", "b"}, order)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changePassword", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleFuncIsUnnamed(t *testing.T) {
	r := New()
	r.HandleFunc("/metrics", ok)

	assert.Empty(t, r.Routes())
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
