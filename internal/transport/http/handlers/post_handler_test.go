package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func authedRequest(method, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	return req.WithContext(ctx)
}

func TestGetPostMalformedIDReadsAsNotFound(t *testing.T) {
	h := NewPostHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	// A malformed id must be indistinguishable from an absent one.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "POST_NOT_FOUND")
}

func TestCreatePostRejectsBadInputBeforeService(t *testing.T) {
	h := NewPostHandler(nil, zap.NewNop())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid json", "{", "INVALID_JSON"},
		{"empty content", `{"content":""}`, "VALIDATION_ERROR"},
		{"oversized content", `{"content":"` + strings.Repeat("a", 1001) + `"}`, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, authedRequest(http.MethodPost, "/api/v1/posts", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestAddCommentRejectsOversizedText(t *testing.T) {
	h := NewPostHandler(nil, zap.NewNop())

	req := authedRequest(http.MethodPost, "/api/v1/posts/x/comments",
		`{"text":"`+strings.Repeat("c", 501)+`"}`)
	req.SetPathValue("id", uuid.New().String())
	rec := httptest.NewRecorder()

	h.AddComment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
