package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/book"
	"cafedeslettres/internal/club"
	"cafedeslettres/internal/config"
	"cafedeslettres/internal/contact"
	"cafedeslettres/internal/dashboard"
	"cafedeslettres/internal/event"
	"cafedeslettres/internal/goal"
	"cafedeslettres/internal/httpx"
	"cafedeslettres/internal/platform/logging"
	"cafedeslettres/internal/platform/postgres"
	"cafedeslettres/internal/profile"
	"cafedeslettres/internal/readinglist"
	"cafedeslettres/internal/review"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.WithError(err).Fatal("invalid logging configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("cannot open database")
	}
	defer dbPool.Close()
	logrus.Info("database connection OK")

	t := cfg.DBTimeout
	activityService := activity.NewService(activity.NewPostgresRepo(dbPool, t))
	bookService := book.NewService(book.NewPostgresRepo(dbPool, t))
	reviewService := review.NewService(review.NewPostgresRepo(dbPool, t), activityService)
	clubService := club.NewService(club.NewPostgresRepo(dbPool, t), activityService)
	eventService := event.NewService(event.NewPostgresRepo(dbPool, t), activityService)
	shelfService := readinglist.NewService(readinglist.NewPostgresRepo(dbPool, t), activityService)
	goalService := goal.NewService(goal.NewPostgresRepo(dbPool, t))
	profileService := profile.NewService(profile.NewPostgresRepo(dbPool, t))
	contactService := contact.NewService(contact.NewPostgresRepo(dbPool, t))
	dashboardService := dashboard.NewService(dashboard.Sources{
		Profiles:   profileService,
		Clubs:      clubService,
		Activities: activityService,
		Events:     eventService,
		Books:      bookService,
		Shelf:      shelfService,
		Reviews:    reviewService,
		Goals:      goalService,
	}, cfg.Location, cfg.DefaultGoalTarget)

	h := handlers{
		books:      book.NewHTTPHandler(bookService),
		reviews:    review.NewHTTPHandler(reviewService),
		clubs:      club.NewHTTPHandler(clubService),
		events:     event.NewHTTPHandler(eventService),
		shelf:      readinglist.NewHTTPHandler(shelfService),
		goals:      goal.NewHTTPHandler(goalService),
		profiles:   profile.NewHTTPHandler(profileService),
		activities: activity.NewHTTPHandler(activityService),
		dashboard:  dashboard.NewHTTPHandler(dashboardService),
		contact:    contact.NewHTTPHandler(contactService),
	}

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst).TrustProxies(cfg.TrustedProxies)
	go rateLimiter.RunCleanup(ctx)

	auth := httpx.NewAuthenticator(cfg.JWTSecret, cfg.JWTAudience)
	handler := newServer(cfg, dbPool, auth, rateLimiter, h)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", cfg.Addr).Info("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
