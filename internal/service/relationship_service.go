package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
	"github.com/ripplehq/ripple/internal/repository"
)

var (
	ErrSelfConnection = errors.New("cannot connect with yourself")
	ErrUserNotFound   = errors.New("user not found")
)

type RelationshipService struct {
	userRepo repository.UserRepository
	resolver *Resolver
}

func NewRelationshipService(userRepo repository.UserRepository, resolver *Resolver) *RelationshipService {
	return &RelationshipService{
		userRepo: userRepo,
		resolver: resolver,
	}
}

type ConnectionResult struct {
	Connected bool            `json:"connected"`
	User      *domain.Profile `json:"user"`
}

// ToggleConnection flips the follow edge caller→target. A first call
// connects, a second disconnects; the caller's connections list and the
// target's followers list always change as a pair.
func (s *RelationshipService) ToggleConnection(ctx context.Context, callerID, targetID uuid.UUID) (*ConnectionResult, error) {
	if callerID == targetID {
		return nil, ErrSelfConnection
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("looking up target user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	connected, err := s.userRepo.ToggleConnection(ctx, callerID, targetID)
	if err != nil {
		return nil, fmt.Errorf("toggling connection: %w", err)
	}

	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	profile, err := s.resolver.ResolveProfile(ctx, caller)
	if err != nil {
		return nil, err
	}

	return &ConnectionResult{Connected: connected, User: profile}, nil
}

// ConnectionStatus reports whether the caller currently follows the target.
// It deliberately skips the target existence check the toggle performs: an
// unknown target simply reads as not connected.
func (s *RelationshipService) ConnectionStatus(ctx context.Context, callerID, targetID uuid.UUID) (bool, error) {
	return s.userRepo.IsConnected(ctx, callerID, targetID)
}
