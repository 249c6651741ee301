package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
	"github.com/ripplehq/ripple/internal/repository"
)

// searchLimit caps how many users a single search returns.
const searchLimit = 20

type ProfileService struct {
	userRepo repository.UserRepository
	resolver *Resolver
}

func NewProfileService(userRepo repository.UserRepository, resolver *Resolver) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		resolver: resolver,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.resolver.ResolveProfile(ctx, user)
}

type UpdateProfileInput struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = strings.TrimSpace(input.Name)
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return s.resolver.ResolveProfile(ctx, user)
}

type UserSearchResult struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchUsers matches the query case-insensitively against name and email,
// newest registrations first. An empty query lists everyone up to the cap.
func (s *ProfileService) SearchUsers(ctx context.Context, query string) ([]UserSearchResult, error) {
	users, err := s.userRepo.Search(ctx, strings.TrimSpace(query), searchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]UserSearchResult, 0, len(users))
	for i := range users {
		u := &users[i]
		results = append(results, UserSearchResult{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Bio:       u.Bio,
			CreatedAt: u.CreatedAt,
		})
	}
	return results, nil
}
