package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ripplehq/ripple/internal/service"
	"github.com/ripplehq/ripple/internal/transport/http/middleware"
	"github.com/ripplehq/ripple/pkg/validator"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService *service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService *service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePost(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, input.Content)
	if err != nil {
		h.writePostError(w, "create post", err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.Feed(r.Context())
	if err != nil {
		h.writePostError(w, "list feed", err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "POST_NOT_FOUND", "Post not found")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		h.writePostError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	postID, ok := pathID(w, r, "id", "POST_NOT_FOUND", "Post not found")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(r.Context(), userID, postID); err != nil {
		h.writePostError(w, "delete post", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post removed"})
}

func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	postID, ok := pathID(w, r, "id", "POST_NOT_FOUND", "Post not found")
	if !ok {
		return
	}

	post, err := h.postService.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		h.writePostError(w, "toggle like", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	postID, ok := pathID(w, r, "id", "POST_NOT_FOUND", "Post not found")
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.postService.AddComment(r.Context(), userID, postID, input.Text)
	if err != nil {
		h.writePostError(w, "add comment", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) writePostError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
	case errors.Is(err, service.ErrNotPostAuthor):
		writeError(w, http.StatusUnauthorized, "NOT_AUTHORIZED", "User not authorized")
	case errors.Is(err, service.ErrInvalidContent), errors.Is(err, service.ErrInvalidComment):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
