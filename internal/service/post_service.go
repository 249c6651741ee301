package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ripplehq/ripple/internal/domain"
	"github.com/ripplehq/ripple/internal/repository"
	"github.com/ripplehq/ripple/pkg/validator"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrNotPostAuthor  = errors.New("only the post author can delete it")
	ErrInvalidContent = errors.New("post content is empty or too long")
	ErrInvalidComment = errors.New("comment text is empty or too long")
)

type PostService struct {
	postRepo repository.PostRepository
	resolver *Resolver
}

func NewPostService(postRepo repository.PostRepository, resolver *Resolver) *PostService {
	return &PostService{
		postRepo: postRepo,
		resolver: resolver,
	}
}

func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, content string) (*domain.PostView, error) {
	// Handlers validate first; the length rule is re-checked here so no
	// call path can slip an oversized post into the store.
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > validator.MaxPostLen {
		return nil, ErrInvalidContent
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return s.resolver.ResolvePost(ctx, post)
}

func (s *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return s.resolver.ResolvePost(ctx, post)
}

// Feed returns every post, newest first.
func (s *PostService) Feed(ctx context.Context) ([]domain.PostView, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolvePosts(ctx, posts)
}

func (s *PostService) PostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.PostView, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolvePosts(ctx, posts)
}

// DeletePost removes a post permanently. Ownership is the sole
// authorization rule; there is no moderator override.
func (s *PostService) DeletePost(ctx context.Context, callerID, postID uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return ErrNotPostAuthor
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's membership in the post's like set. Authors
// may like their own posts.
func (s *PostService) ToggleLike(ctx context.Context, callerID, postID uuid.UUID) (*domain.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if _, err := s.postRepo.ToggleLike(ctx, postID, callerID); err != nil {
		return nil, fmt.Errorf("toggling like: %w", err)
	}

	return s.GetPost(ctx, postID)
}

// AddComment prepends a comment to the post's log; the resolved comment
// list always reads newest-first.
func (s *PostService) AddComment(ctx context.Context, callerID, postID uuid.UUID, text string) (*domain.PostView, error) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > validator.MaxCommentLen {
		return nil, ErrInvalidComment
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    callerID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	return s.GetPost(ctx, postID)
}
