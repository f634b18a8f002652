// Package repotest provides in-memory repositories for service and HTTP tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"book-digest/internal/data/entity"
	"book-digest/internal/data/repository"

	"github.com/google/uuid"
)

// Store backs all fake repositories. Set Err to make every call fail.
type Store struct {
	mu       sync.Mutex
	books    map[int64]string
	reviews  map[int64]entity.Review
	sessions map[uuid.UUID]entity.Session
	removed  map[int64]bool // deleted user ids
	nextID   int64

	Err error
}

func NewStore() *Store {
	return &Store{
		books:    map[int64]string{},
		reviews:  map[int64]entity.Review{},
		sessions: map[uuid.UUID]entity.Session{},
		removed:  map[int64]bool{},
	}
}

// Repository returns a repository.Repository backed by s
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Book:    bookRepo{s},
		Review:  reviewRepo{s},
		Session: sessionRepo{s},
	}
}

func (s *Store) AddBook(id int64, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[id] = title
}

// DeleteBook removes the book and cascades to its reviews
func (s *Store) DeleteBook(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.books, id)
	for rid, r := range s.reviews {
		if r.BookID == id {
			delete(s.reviews, rid)
		}
	}
}

// DeleteUser cascades the account removal to the user's reviews and sessions
func (s *Store) DeleteUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed[userID] = true
	for rid, r := range s.reviews {
		if r.UserID == userID {
			delete(s.reviews, rid)
		}
	}
	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
}

// AddReview stores r as-is, assigning an id when r.ID is zero
func (s *Store) AddReview(r entity.Review) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		s.nextID++
		r.ID = s.nextID
	} else if r.ID > s.nextID {
		s.nextID = r.ID
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.reviews[r.ID] = r
	return r.ID
}

func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

// AddSession issues a token for userID valid for ttl (negative = expired)
func (s *Store) AddSession(userID int64, ttl time.Duration) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	token := uuid.New()
	s.sessions[token] = entity.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	return token
}

type bookRepo struct{ s *Store }

func (r bookRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	_, ok := r.s.books[id]
	return ok, nil
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.books[review.BookID]; !ok || r.s.removed[review.UserID] {
		return fmt.Errorf("create review for book %d by user %d: %w",
			review.BookID, review.UserID, repository.ErrMissingReference)
	}
	r.s.nextID++
	review.ID = r.s.nextID
	review.CreatedAt = time.Now().UTC()
	r.s.reviews[review.ID] = *review
	return nil
}

func (r reviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r reviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*entity.Review, 0, len(r.s.reviews))
	for _, review := range r.s.reviews {
		review := review
		out = append(out, &review)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r reviewRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.reviews[id]; !ok {
		return fmt.Errorf("delete review %d: %w", id, repository.ErrNotFound)
	}
	delete(r.s.reviews, id)
	return nil
}

type sessionRepo struct{ s *Store }

func (r sessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return &session, nil
}
