package main

import (
	"context"
	"net/http"
	"time"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/book"
	"cafedeslettres/internal/club"
	"cafedeslettres/internal/config"
	"cafedeslettres/internal/contact"
	"cafedeslettres/internal/dashboard"
	"cafedeslettres/internal/event"
	"cafedeslettres/internal/goal"
	"cafedeslettres/internal/httpx"
	"cafedeslettres/internal/platform/metrics"
	"cafedeslettres/internal/profile"
	"cafedeslettres/internal/readinglist"
	"cafedeslettres/internal/review"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	books      *book.HTTPHandler
	reviews    *review.HTTPHandler
	clubs      *club.HTTPHandler
	events     *event.HTTPHandler
	shelf      *readinglist.HTTPHandler
	goals      *goal.HTTPHandler
	profiles   *profile.HTTPHandler
	activities *activity.HTTPHandler
	dashboard  *dashboard.HTTPHandler
	contact    *contact.HTTPHandler
}

// newServer wraps the router in the middleware stack.
func newServer(cfg config.Config, db pinger, auth *httpx.Authenticator, rl *httpx.RateLimitMiddleware, h handlers) http.Handler {
	return httpx.Chain(newRouter(db, auth, h), middlewares(cfg, rl)...)
}

// middlewares lists the stack outermost first. Recovery sits inside the
// request id, access log and metrics layers so a panic is still logged and
// counted as a 500.
func middlewares(cfg config.Config, rl *httpx.RateLimitMiddleware) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		metrics.InstrumentHandler,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		rl.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	}
}

func newRouter(db pinger, auth *httpx.Authenticator, h handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Catalogue
	mux.HandleFunc("GET /v1/books", h.books.List)
	mux.HandleFunc("GET /v1/books/categories", h.books.Categories)
	mux.HandleFunc("GET /v1/books/recommendations", h.books.Recommendations)
	mux.HandleFunc("GET /v1/books/{id}", h.books.Get)
	mux.HandleFunc("GET /v1/books/{id}/reviews", h.reviews.ListByBook)
	mux.Handle("POST /v1/books/{id}/reviews", auth.RequireAuthFunc(h.reviews.Create))
	mux.Handle("DELETE /v1/reviews/{id}", auth.RequireAuthFunc(h.reviews.Delete))

	// Clubs and events
	mux.Handle("GET /v1/clubs", auth.OptionalAuthFunc(h.clubs.List))
	mux.Handle("POST /v1/clubs", auth.RequireAuthFunc(h.clubs.Create))
	mux.Handle("POST /v1/clubs/{id}/members", auth.RequireAuthFunc(h.clubs.Join))
	mux.Handle("DELETE /v1/clubs/{id}/members", auth.RequireAuthFunc(h.clubs.Leave))
	mux.HandleFunc("GET /v1/events", h.events.List)
	mux.Handle("POST /v1/events/{id}/registrations", auth.RequireAuthFunc(h.events.Register))
	mux.Handle("DELETE /v1/events/{id}/registrations", auth.RequireAuthFunc(h.events.Unregister))

	// Current member
	mux.Handle("GET /v1/me/profile", auth.RequireAuthFunc(h.profiles.GetOwnProfile))
	mux.Handle("PATCH /v1/me/profile", auth.RequireAuthFunc(h.profiles.UpdateProfile))
	mux.Handle("GET /v1/me/clubs", auth.RequireAuthFunc(h.clubs.ListMine))
	mux.Handle("GET /v1/me/activities", auth.RequireAuthFunc(h.activities.ListMine))
	mux.Handle("GET /v1/me/books", auth.RequireAuthFunc(h.shelf.List))
	mux.Handle("PUT /v1/me/books/{bookID}", auth.RequireAuthFunc(h.shelf.Upsert))
	mux.Handle("DELETE /v1/me/books/{bookID}", auth.RequireAuthFunc(h.shelf.Remove))
	mux.Handle("GET /v1/me/goals/{year}", auth.RequireAuthFunc(h.goals.Get))
	mux.Handle("PUT /v1/me/goals/{year}", auth.RequireAuthFunc(h.goals.Set))
	mux.Handle("GET /v1/me/dashboard", auth.RequireAuthFunc(h.dashboard.Get))

	mux.Handle("POST /v1/contact", auth.OptionalAuthFunc(h.contact.Submit))

	return mux
}
