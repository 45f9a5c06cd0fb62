package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// DecodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the caller may go on.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		BadRequest(w, r, "Invalid request body")
		return false
	}
	if details := ValidateStruct(dst); len(details) > 0 {
		ValidationFailed(w, r, details)
		return false
	}
	return true
}

// PathUUID returns the named path value when it is a well-formed UUID.
func PathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if _, err := uuid.Parse(v); err != nil {
		BadRequest(w, r, "Invalid "+name)
		return "", false
	}
	return v, true
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// ParsePage reads page and page_size, falling back to defaultSize when the
// size is missing or out of (0, maxSize].
func ParsePage(r *http.Request, defaultSize, maxSize int) Page {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("page_size"))
	if size <= 0 || size > maxSize {
		size = defaultSize
	}
	return Page{Number: page, Size: size}
}

// PageMeta renders pagination metadata for a filtered total.
func PageMeta(p Page, total int) map[string]any {
	return map[string]any{
		"page":        p.Number,
		"page_size":   p.Size,
		"total":       total,
		"total_pages": (total + p.Size - 1) / p.Size,
	}
}
