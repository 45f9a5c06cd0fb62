package httpx

import (
	"context"
	"net/http"

	"cafedeslettres/internal/platform/logging"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
	userSinkKey  contextKey = "userSink"
)

// UserIDFrom retrieves the authenticated member id, or "" for anonymous requests.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the token role.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom retrieves the request id assigned by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context with the member id and role.
func ContextWithUser(ctx context.Context, userID, role string) context.Context {
	if sink, ok := ctx.Value(userSinkKey).(*string); ok {
		*sink = userID
	}
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = logging.WithUserID(ctx, userID)
	return context.WithValue(ctx, roleKey, role)
}

// ContextWithRequestID returns a new context with the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = logging.WithRequestID(ctx, requestID)
	return context.WithValue(ctx, requestIDKey, requestID)
}

// withUserSink lets an outer middleware observe the member id set further in.
func withUserSink(ctx context.Context, sink *string) context.Context {
	return context.WithValue(ctx, userSinkKey, sink)
}
