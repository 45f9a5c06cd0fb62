package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cafedeslettres/internal/httpx"
	"cafedeslettres/internal/platform/crypto"
)

const (
	TestSecret   = "test-secret"
	TestAudience = "authenticated"
	TestUserID   = "6f1c2b1e-3c2a-4f7e-9a55-1d2b3c4d5e6f"
	OtherUserID  = "0b4f7c9a-8e21-4d3b-b7a0-2c5e9f1a6d34"
	TestBookID   = "9a0d1e2f-5b6c-4d7e-8f90-a1b2c3d4e5f6"
	TestClubID   = "c1ab0000-0000-4000-8000-000000000001"
	TestEventID  = "e7e70000-0000-4000-8000-000000000001"
)

// DB connects to TEST_DB_DSN and skips the test when it is unset or unreachable.
// Migrations are expected to be applied already.
func DB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping test: TEST_DB_DSN not set")
	}
	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		t.Skipf("Skipping test: cannot ping test database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

// GenerateTestToken signs a token the auth middleware accepts.
func GenerateTestToken(userID string) string {
	token, _ := crypto.GenerateToken(TestSecret, TestAudience, userID, "lecteur@example.com", time.Hour)
	return token
}

// GenerateExpiredToken signs a token that expired an hour ago.
func GenerateExpiredToken(userID string) string {
	c := crypto.Claims{
		Role: "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{TestAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(TestSecret))
	return token
}

// NewRequest creates a new HTTP request with an optional JSON body.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	var reader io.Reader
	switch b := body.(type) {
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a request carrying a bearer token.
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// AsUser attaches an authenticated user to the request context, bypassing token parsing.
func AsUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID, "authenticated"))
}

// Envelope is the decoded response body.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Decode reads the recorded envelope.
func Decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return env
}

// ErrorCode returns the error code of the recorded envelope, or "".
func ErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := Decode(t, w)
	if env.Error == nil {
		return ""
	}
	return env.Error.Code
}
