// Package kernel assembles the HTTP handler: the global middleware stack,
// the Prometheus endpoint and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/donorlink/app/routes"
	"github.com/shashiranjanraj/donorlink/config"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"github.com/shashiranjanraj/donorlink/pkg/metrics"
	"github.com/shashiranjanraj/donorlink/pkg/middleware"
	"github.com/shashiranjanraj/donorlink/pkg/reqid"
	"github.com/shashiranjanraj/donorlink/pkg/router"
	"gorm.io/gorm"
)

// NewRouter builds the router with every route mounted against db.
func NewRouter(db *gorm.DB, hasher auth.PasswordHasher) *router.Router {
	r := router.New()

	// Outermost first:
	//  1. metrics     total latency including everything below
	//  2. recovery    panics become a 500 envelope
	//  3. request id  before anything logs
	//  4. client ip   X-Forwarded-For only from TRUSTED_PROXIES
	//  5. logger      request_id-tagged logger into the context
	//  6. cors
	//  7. rate limit  keyed by the client ip
	//  8. db session  scoped to the request context
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.ClientIP(trustedProxies()))
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.CORSOptionsFromConfig()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))
	r.Use(database.Middleware(db))

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, hasher)
	return r
}

// trustedProxies falls back to trusting no proxy when TRUSTED_PROXIES does
// not parse.
func trustedProxies() middleware.TrustedProxies {
	proxies, err := middleware.ParseTrustedProxies(config.TrustedProxies())
	if err != nil {
		logger.Warn("ignoring TRUSTED_PROXIES", "error", err)
		return nil
	}
	return proxies
}

// NewHandler returns the ready-to-serve handler.
func NewHandler(db *gorm.DB, hasher auth.PasswordHasher) http.Handler {
	return NewRouter(db, hasher).Handler()
}
