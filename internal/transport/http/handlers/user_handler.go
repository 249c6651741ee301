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

type UserHandler struct {
	profileService      *service.ProfileService
	relationshipService *service.RelationshipService
	postService         *service.PostService
	logger              *zap.Logger
}

func NewUserHandler(
	profileService *service.ProfileService,
	relationshipService *service.RelationshipService,
	postService *service.PostService,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		profileService:      profileService,
		relationshipService: relationshipService,
		postService:         postService,
		logger:              logger,
	}
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.profileService.SearchUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeUserError(w, "search users", err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id", "USER_NOT_FOUND", "User not found")
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeUserError(w, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id", "USER_NOT_FOUND", "User not found")
	if !ok {
		return
	}

	posts, err := h.postService.PostsByAuthor(r.Context(), userID)
	if err != nil {
		h.writeUserError(w, "list user posts", err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProfile(input.Name, input.Bio); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		h.writeUserError(w, "update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) ToggleConnection(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	targetID, ok := pathID(w, r, "id", "USER_NOT_FOUND", "User not found")
	if !ok {
		return
	}

	result, err := h.relationshipService.ToggleConnection(r.Context(), userID, targetID)
	if err != nil {
		h.writeUserError(w, "toggle connection", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) ConnectionStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	// Unknown targets read as "not connected"; only the toggle checks
	// target existence.
	targetID, ok := pathID(w, r, "id", "USER_NOT_FOUND", "User not found")
	if !ok {
		return
	}

	connected, err := h.relationshipService.ConnectionStatus(r.Context(), userID, targetID)
	if err != nil {
		h.writeUserError(w, "connection status", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"connected": connected})
}

func (h *UserHandler) writeUserError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrSelfConnection):
		writeError(w, http.StatusBadRequest, "SELF_CONNECTION", "You cannot connect with yourself")
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
