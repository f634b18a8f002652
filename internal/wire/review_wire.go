package wire

import (
	"book-digest/internal/adaptor"
	"book-digest/internal/data/repository"
	"book-digest/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReview mounts the review routes. Access is open; the identity
// middleware only tells the handlers who is asking.
func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/reviews", func(r chi.Router) {
		r.Use(middleware.Identity(repo.Session, log))

		r.Get("/", reviewHandler.ListReviews)
		r.Post("/", reviewHandler.CreateReview)
		r.Get("/{id}", reviewHandler.GetReview)
		r.Delete("/{id}", reviewHandler.DeleteReview)
	})
}
