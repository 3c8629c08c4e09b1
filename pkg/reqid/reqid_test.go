package reqid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(header string) (seen string, rec *httptest.ResponseRecorder) {
	h := Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = FromCtx(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(Header, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddlewareGeneratesID(t *testing.T) {
	seen, rec := serve("")
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, rec.Header().Get(Header))
}

func TestMiddlewareReusesInboundID(t *testing.T) {
	seen, rec := serve("gateway-7f3a.1")
	assert.Equal(t, "gateway-7f3a.1", seen)
	assert.Equal(t, "gateway-7f3a.1", rec.Header().Get(Header))
}

func TestMiddlewareRejectsMalformedID(t *testing.T) {
	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", maxLen+1)} {
		seen, _ := serve(bad)
		assert.NotEqual(t, bad, seen)
		assert.Len(t, seen, 32)
	}
}

func TestFromCtxEmpty(t *testing.T) {
	assert.Equal(t, "", FromCtx(context.Background()))
}
