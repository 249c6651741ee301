package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Search(ctx context.Context, query string, limit int) ([]domain.User, error)

	Connections(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	IsConnected(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	// ToggleConnection flips the edge userID→targetID and reports the new
	// state. Both sides of the edge (caller's connections row and target's
	// followers row) change in a single transaction; this is the only place
	// the pairing invariant is maintained.
	ToggleConnection(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// GetByID loads the post together with its liker ids and its comments,
	// comments newest-first. Returns (nil, nil) when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ToggleLike flips userID's membership in the post's like set and
	// reports whether the user likes the post afterwards.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, comment *domain.Comment) error
}
