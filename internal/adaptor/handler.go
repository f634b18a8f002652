package adaptor

import (
	"book-digest/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, log),
	}
}
