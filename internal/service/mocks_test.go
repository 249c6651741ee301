package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
)

// In-memory repositories mirroring the contracts of the postgres
// implementations: (nil, nil) on missing records, both sides of a
// connection edge flipped together, comment logs kept newest-first.

type fakeUserRepo struct {
	users     map[uuid.UUID]*domain.User
	conns     map[uuid.UUID]map[uuid.UUID]bool
	followers map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uuid.UUID]*domain.User),
		conns:     make(map[uuid.UUID]map[uuid.UUID]bool),
		followers: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	u := *user
	f.users[u.ID] = &u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; ok {
		copied := *user
		f.users[user.ID] = &copied
	}
	return nil
}

func (f *fakeUserRepo) Search(_ context.Context, query string, limit int) ([]domain.User, error) {
	var users []domain.User
	for _, u := range f.users {
		if query == "" ||
			strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(u.Email), strings.ToLower(query)) {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) Connections(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return setToIDs(f.conns[userID]), nil
}

func (f *fakeUserRepo) Followers(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return setToIDs(f.followers[userID]), nil
}

func (f *fakeUserRepo) IsConnected(_ context.Context, userID, targetID uuid.UUID) (bool, error) {
	return f.conns[userID][targetID], nil
}

func (f *fakeUserRepo) ToggleConnection(_ context.Context, userID, targetID uuid.UUID) (bool, error) {
	if f.conns[userID][targetID] {
		delete(f.conns[userID], targetID)
		delete(f.followers[targetID], userID)
		return false, nil
	}
	if f.conns[userID] == nil {
		f.conns[userID] = make(map[uuid.UUID]bool)
	}
	if f.followers[targetID] == nil {
		f.followers[targetID] = make(map[uuid.UUID]bool)
	}
	f.conns[userID][targetID] = true
	f.followers[targetID][userID] = true
	return true, nil
}

type fakePostRepo struct {
	posts    map[uuid.UUID]*domain.Post
	order    []uuid.UUID
	likes    map[uuid.UUID]map[uuid.UUID]bool
	comments map[uuid.UUID][]domain.Comment
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    make(map[uuid.UUID]*domain.Post),
		likes:    make(map[uuid.UUID]map[uuid.UUID]bool),
		comments: make(map[uuid.UUID][]domain.Comment),
	}
}

func (f *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	p := *post
	f.posts[p.ID] = &p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return f.loaded(p), nil
}

func (f *fakePostRepo) ListAll(_ context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	for i := len(f.order) - 1; i >= 0; i-- {
		if p, ok := f.posts[f.order[i]]; ok {
			posts = append(posts, *f.loaded(p))
		}
	}
	return posts, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	all, _ := f.ListAll(ctx)
	var posts []domain.Post
	for _, p := range all {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	delete(f.likes, id)
	delete(f.comments, id)
	return nil
}

func (f *fakePostRepo) ToggleLike(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	if f.likes[postID][userID] {
		delete(f.likes[postID], userID)
		return false, nil
	}
	if f.likes[postID] == nil {
		f.likes[postID] = make(map[uuid.UUID]bool)
	}
	f.likes[postID][userID] = true
	return true, nil
}

func (f *fakePostRepo) AddComment(_ context.Context, comment *domain.Comment) error {
	f.comments[comment.PostID] = append([]domain.Comment{*comment}, f.comments[comment.PostID]...)
	return nil
}

func (f *fakePostRepo) loaded(p *domain.Post) *domain.Post {
	copied := *p
	copied.LikerIDs = setToIDs(f.likes[p.ID])
	copied.Comments = append([]domain.Comment(nil), f.comments[p.ID]...)
	return &copied
}

func setToIDs(set map[uuid.UUID]bool) []uuid.UUID {
	var ids []uuid.UUID
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
