// Package ctx wraps a request/response pair in a single *Context so handlers
// read parameters and write envelopes without repeating plumbing:
//
//	func (c *DonationController) Contribute(cx *ctx.Context) {
//	    userID, ok := cx.ParamUint("user_id")
//	    ...
//	    cx.SuccessMessage("Contribution Placed successfully", nil)
//	}
//
//	r.Put("/contribute/{user_id}/{organ_id}", "donations.contribute", ctx.Wrap(c.Contribute))
package ctx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/donorlink/pkg/bind"
	"github.com/shashiranjanraj/donorlink/pkg/errs"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"github.com/shashiranjanraj/donorlink/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a numeric path parameter. On failure it writes a 422
// naming the parameter and returns false.
func (c *Context) ParamUint(key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		c.ValidationError(map[string]string{key: fmt.Sprintf("The %s field must be a number.", key)})
		return 0, false
	}
	return uint(n), true
}

// Query returns a query-string value, "" if absent.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// RequireQuery returns a query-string value that may be empty but must be
// present. A missing key writes a 422 and returns false.
func (c *Context) RequireQuery(key string) (string, bool) {
	q := c.R.URL.Query()
	if !q.Has(key) {
		c.ValidationError(map[string]string{key: fmt.Sprintf("The %s field is required.", key)})
		return "", false
	}
	return q.Get(key), true
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ─── Binding / Validation ─────────────────────────────────────────────────────

// BindJSON decodes the JSON body into dest and validates it. It writes a 400
// for malformed bodies or a 422 for rule failures, returning false in both
// cases.
func (c *Context) BindJSON(dest any) bool {
	fieldErrs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	return c.report(fieldErrs)
}

// Valid validates an already-populated struct (typically built from query
// parameters), writing a 422 and returning false on failure.
func (c *Context) Valid(v any) bool {
	return c.report(bind.Struct(v))
}

func (c *Context) report(fieldErrs map[string]string) bool {
	if bind.HasErrors(fieldErrs) {
		c.ValidationError(fieldErrs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v as JSON with the given status code.
func (c *Context) JSON(code int, v any) {
	c.W.Header().Set("Content-Type", "application/json")
	c.W.WriteHeader(code)
	c.status = code
	json.NewEncoder(c.W).Encode(v) //nolint:errcheck
}

// Success sends a 200 envelope: {"status":200,"data":...}
func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, response.Envelope{Status: http.StatusOK, Data: data})
}

// SuccessMessage sends a 200 envelope carrying a message and optional data.
func (c *Context) SuccessMessage(message string, data any) {
	c.JSON(http.StatusOK, response.Envelope{Status: http.StatusOK, Message: message, Data: data})
}

// Created sends a 201 envelope.
func (c *Context) Created(message string, data any) {
	c.JSON(http.StatusCreated, response.Envelope{Status: http.StatusCreated, Message: message, Data: data})
}

// Error sends an error envelope with the given status and message.
func (c *Context) Error(code int, message string) {
	c.JSON(code, response.Envelope{Status: code, Message: message})
}

// ValidationError sends a 422 with field-level errors.
func (c *Context) ValidationError(fieldErrs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, response.Envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrs,
	})
}

// Fail answers with err's status when err carries an *errs.HTTPError and
// with a logged 500 otherwise.
func (c *Context) Fail(err error) {
	if httpErr, ok := errs.As(err); ok {
		c.Error(httpErr.Status, httpErr.Message)
		return
	}
	logger.WithCtx(c.Context()).Error("request failed",
		"method", c.R.Method,
		"path", c.R.URL.Path,
		"error", err,
	)
	c.Error(http.StatusInternalServerError, "Internal Server Error")
}

// WrittenStatus returns the status written so far, 0 if none.
func (c *Context) WrittenStatus() int { return c.status }
