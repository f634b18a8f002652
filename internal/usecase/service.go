package usecase

import (
	"errors"

	"book-digest/internal/data/repository"
	"book-digest/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrReviewNotFound = errors.New("review not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrNotOwner       = errors.New("forbidden: not the review owner")
	ErrAnonymous      = errors.New("authentication required")
)

// ValidationError carries the per-field messages of a rejected request.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type Service struct {
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Review: NewReviewService(repo, log),
	}
}
