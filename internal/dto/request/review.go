package request

type CreateReviewRequest struct {
	Book    int64  `json:"book" validate:"required,gt=0"`
	Rating  *int   `json:"rating" validate:"required,min=1,max=10"`
	Comment string `json:"comment"`
}
