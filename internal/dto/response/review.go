package response

import (
	"book-digest/internal/data/entity"
	"time"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Book      int64     `json:"book"`
	User      int64     `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	IsOwner   bool      `json:"is_owner"`
}

// ReviewToResponse serializes a review as seen by requesterID (0 = anonymous)
func ReviewToResponse(review *entity.Review, requesterID int64) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Book:      review.BookID,
		User:      review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		IsOwner:   review.IsOwnedBy(requesterID),
	}
}

func ReviewsToResponse(reviews []*entity.Review, requesterID int64) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review, requesterID)
	}
	return out
}
