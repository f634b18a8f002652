package repository

import (
	"errors"

	"book-digest/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a write targets a row that does not exist
	ErrNotFound = errors.New("record not found")
	// ErrMissingReference is returned when a foreign key points nowhere
	ErrMissingReference = errors.New("referenced record does not exist")
)

const pgForeignKeyViolation = "23503"

type Repository struct {
	Book    BookRepository
	Review  ReviewRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Book:    NewBookRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
