// Package logging configures the process-wide logrus logger and derives
// request-scoped entries from a context.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	userIDKey    ctxKey = "user_id"
)

// Setup applies level and format ("json" or "text") to the standard logger.
func Setup(level, format string) error {
	return configure(logrus.StandardLogger(), os.Stdout, level, format)
}

func configure(logger *logrus.Logger, out io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetOutput(out)

	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// WithRequestID stores the request id for later log entries.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID stores the authenticated member id for later log entries.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// FromContext returns an entry tagged with whatever request metadata ctx carries.
func FromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		fields["request_id"] = v
	}
	if v, ok := ctx.Value(userIDKey).(string); ok && v != "" {
		fields["user_id"] = v
	}
	return logrus.WithFields(fields)
}
