package entity

// Review is a rating and comment left by a user on a book.
type Review struct {
	BaseSimple
	BookID  int64  `db:"book_id"`
	UserID  int64  `db:"user_id"`
	Rating  int    `db:"rating"` // 1-10
	Comment string `db:"comment"`
}

// IsOwnedBy reports whether userID submitted the review. The zero id is
// never an owner.
func (r *Review) IsOwnedBy(userID int64) bool {
	return userID != 0 && r.UserID == userID
}
