package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "salt:hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newRelationshipService() (*RelationshipService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewRelationshipService(repo, NewResolver(repo)), repo
}

func TestToggleConnectionPairsBothMemberships(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRelationshipService()
	alice := seedUser(t, repo, "Alice", "alice@example.com")
	bob := seedUser(t, repo, "Bob", "bob@example.com")

	result, err := svc.ToggleConnection(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, result.Connected)

	// Both sides of the edge must exist together.
	conns, _ := repo.Connections(ctx, alice.ID)
	followers, _ := repo.Followers(ctx, bob.ID)
	assert.Equal(t, []uuid.UUID{bob.ID}, conns)
	assert.Equal(t, []uuid.UUID{alice.ID}, followers)

	require.Len(t, result.User.Connections, 1)
	assert.Equal(t, bob.ID, result.User.Connections[0].ID)
	assert.Equal(t, "bob@example.com", result.User.Connections[0].Email)
}

func TestToggleConnectionTwiceRestoresOriginalState(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRelationshipService()
	alice := seedUser(t, repo, "Alice", "alice@example.com")
	bob := seedUser(t, repo, "Bob", "bob@example.com")

	first, err := svc.ToggleConnection(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, first.Connected)

	second, err := svc.ToggleConnection(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, second.Connected)

	conns, _ := repo.Connections(ctx, alice.ID)
	followers, _ := repo.Followers(ctx, bob.ID)
	assert.Empty(t, conns)
	assert.Empty(t, followers)
	assert.Empty(t, second.User.Connections)

	connected, err := svc.ConnectionStatus(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestToggleConnectionRejectsSelf(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRelationshipService()
	alice := seedUser(t, repo, "Alice", "alice@example.com")

	_, err := svc.ToggleConnection(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfConnection)

	conns, _ := repo.Connections(ctx, alice.ID)
	followers, _ := repo.Followers(ctx, alice.ID)
	assert.Empty(t, conns)
	assert.Empty(t, followers)
}

func TestToggleConnectionUnknownTarget(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRelationshipService()
	alice := seedUser(t, repo, "Alice", "alice@example.com")

	_, err := svc.ToggleConnection(ctx, alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	conns, _ := repo.Connections(ctx, alice.ID)
	assert.Empty(t, conns)
}

func TestConnectionStatusSkipsTargetExistenceCheck(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRelationshipService()
	alice := seedUser(t, repo, "Alice", "alice@example.com")
	bob := seedUser(t, repo, "Bob", "bob@example.com")

	// An id that resolves to nothing is simply "not connected", unlike
	// the toggle which errors on it.
	connected, err := svc.ConnectionStatus(ctx, alice.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, connected)

	_, err = svc.ToggleConnection(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	connected, err = svc.ConnectionStatus(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, connected)

	// The edge is directed: Bob does not automatically follow Alice back.
	connected, err = svc.ConnectionStatus(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, connected)
}
