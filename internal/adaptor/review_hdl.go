package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"book-digest/internal/dto/request"
	"book-digest/internal/usecase"
	"book-digest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps a create request; a review is a few ids and a comment
const maxBodyBytes = 64 << 10

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	requesterID, _ := utils.GetUserIDFromContext(r.Context())

	reviews, err := h.service.ListReviews(r.Context(), requesterID)
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req request.CreateReviewRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil || dec.More() {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), requesterID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// GetReview handles GET /reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "review not found")
		return
	}

	requesterID, _ := utils.GetUserIDFromContext(r.Context())

	review, err := h.service.GetReview(r.Context(), reviewID, requesterID)
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "review not found")
		return
	}

	requesterID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.service.DeleteReview(r.Context(), reviewID, requesterID); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// parseID accepts positive integer ids only; anything else cannot match a row
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrReviewNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrBookNotFound):
		h.log.Warn(operation+" failed - unknown book",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		var fields any
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			fields = verr.Fields
		}
		utils.ResponseBadRequest(w, "Validation failed", fields)

	case errors.Is(err, usecase.ErrNotOwner):
		h.log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case errors.Is(err, usecase.ErrAnonymous):
		h.log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
