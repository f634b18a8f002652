package usecase

import (
	"context"
	"errors"
	"fmt"

	"book-digest/internal/data/entity"
	"book-digest/internal/data/repository"
	"book-digest/internal/dto/request"
	"book-digest/internal/dto/response"
	"book-digest/pkg/metrics"
	"book-digest/pkg/utils"

	"go.uber.org/zap"
)

// ReviewService implements the review endpoints. requesterID is the
// authenticated user, 0 for anonymous callers.
type ReviewService interface {
	ListReviews(ctx context.Context, requesterID int64) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, requesterID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReview(ctx context.Context, reviewID, requesterID int64) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, requesterID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, requesterID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	s.log.Debug("Reviews listed",
		zap.Int("count", len(reviews)),
		zap.Int64("requester_id", requesterID),
	)

	return response.ReviewsToResponse(reviews, requesterID), nil
}

func (s *reviewService) CreateReview(ctx context.Context, requesterID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if requesterID == 0 {
		return nil, ErrAnonymous
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	exists, err := s.repo.Book.Exists(ctx, req.Book)
	if err != nil {
		return nil, fmt.Errorf("check book: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("book %d: %w", req.Book, ErrBookNotFound)
	}

	review := &entity.Review{
		BookID:  req.Book,
		UserID:  requesterID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// book or account deleted between the check and the insert
		if errors.Is(err, repository.ErrMissingReference) {
			if ok, _ := s.repo.Book.Exists(ctx, req.Book); ok {
				return nil, fmt.Errorf("user %d: %w", requesterID, ErrAnonymous)
			}
			return nil, fmt.Errorf("book %d: %w", req.Book, ErrBookNotFound)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	metrics.ObserveReview("created")
	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", requesterID),
		zap.Int64("book_id", review.BookID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, requesterID)
	return &resp, nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID, requesterID int64) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
	}

	resp := response.ReviewToResponse(review, requesterID)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, requesterID int64) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
	}

	if !review.IsOwnedBy(requesterID) {
		s.log.Warn("Delete review refused",
			zap.Int64("review_id", reviewID),
			zap.Int64("owner_id", review.UserID),
			zap.Int64("requester_id", requesterID),
		)
		return fmt.Errorf("review %d: %w", reviewID, ErrNotOwner)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		// removed concurrently, e.g. by a cascade
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
		}
		return fmt.Errorf("delete review: %w", err)
	}

	metrics.ObserveReview("deleted")
	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", requesterID),
		zap.Int64("book_id", review.BookID),
	)

	return nil
}
