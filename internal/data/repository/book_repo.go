package repository

import (
	"context"
	"fmt"

	"book-digest/pkg/database"

	"go.uber.org/zap"
)

// BookRepository only answers whether a book exists; books are managed elsewhere
type BookRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type bookRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookRepository(db database.PgxIface, log *zap.Logger) BookRepository {
	return &bookRepository{
		db:  db,
		log: log.With(zap.String("repository", "book")),
	}
}

func (r *bookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check book existence",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return false, fmt.Errorf("check book %d exists: %w", id, err)
	}

	return exists, nil
}
