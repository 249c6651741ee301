package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
	"github.com/ripplehq/ripple/internal/repository"
)

// Resolver turns stored records into resolved views: every user reference
// becomes an inline summary. Referenced users are loaded once per request
// into a lookup map, so resolution is O(1) per reference and a dangling id
// never fails the whole view.
type Resolver struct {
	userRepo repository.UserRepository
}

func NewResolver(userRepo repository.UserRepository) *Resolver {
	return &Resolver{userRepo: userRepo}
}

func (r *Resolver) ResolvePost(ctx context.Context, post *domain.Post) (*domain.PostView, error) {
	views, err := r.ResolvePosts(ctx, []domain.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *Resolver) ResolvePosts(ctx context.Context, posts []domain.Post) ([]domain.PostView, error) {
	ids := make([]uuid.UUID, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].AuthorID)
		ids = append(ids, posts[i].LikerIDs...)
		for _, c := range posts[i].Comments {
			ids = append(ids, c.UserID)
		}
	}

	users, err := r.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, r.resolvePost(&posts[i], users))
	}
	return views, nil
}

func (r *Resolver) resolvePost(post *domain.Post, users map[uuid.UUID]*domain.User) domain.PostView {
	view := domain.PostView{
		ID:        post.ID,
		Content:   post.Content,
		Author:    unknownUser(post.AuthorID),
		Likes:     []domain.UserSummary{},
		Comments:  []domain.CommentView{},
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if author := users[post.AuthorID]; author != nil {
		view.Author = author.Summary(true)
	}

	// A liker that no longer resolves is dropped from the list; a comment
	// stays visible with the explicit unknown-user summary.
	for _, id := range post.LikerIDs {
		if u := users[id]; u != nil {
			view.Likes = append(view.Likes, u.Summary(false))
		}
	}

	for _, c := range post.Comments {
		cv := domain.CommentView{
			ID:        c.ID,
			User:      unknownUser(c.UserID),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
		if u := users[c.UserID]; u != nil {
			cv.User = u.Summary(false)
		}
		view.Comments = append(view.Comments, cv)
	}

	return view
}

func (r *Resolver) ResolveProfile(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	connectionIDs, err := r.userRepo.Connections(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followerIDs, err := r.userRepo.Followers(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	users, err := r.lookup(ctx, append(append([]uuid.UUID{}, connectionIDs...), followerIDs...))
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Bio:         user.Bio,
		Connections: summarize(connectionIDs, users),
		Followers:   summarize(followerIDs, users),
		CreatedAt:   user.CreatedAt,
	}
	return profile, nil
}

func (r *Resolver) lookup(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := r.userRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}

func summarize(ids []uuid.UUID, users map[uuid.UUID]*domain.User) []domain.UserSummary {
	summaries := []domain.UserSummary{}
	for _, id := range ids {
		if u := users[id]; u != nil {
			summaries = append(summaries, u.Summary(true))
		}
	}
	return summaries
}

func unknownUser(id uuid.UUID) domain.UserSummary {
	return domain.UserSummary{ID: id, Name: "Unknown user"}
}
