package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ripplehq/ripple/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.AuthorID, post.Content, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT id, author_id, content, created_at, updated_at
		FROM posts
		WHERE id = $1`

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	posts := []domain.Post{p}
	if err := r.attachInteractions(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func (r *PostRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	return r.list(ctx, `
		SELECT id, author_id, content, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC`)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	return r.list(ctx, `
		SELECT id, author_id, content, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC`, authorID)
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Likes and comments go with the post via ON DELETE CASCADE.
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

// ToggleLike flips userID's membership in the post's like set inside one
// transaction. The (post_id, user_id) primary key rules out duplicates no
// matter how calls interleave.
func (r *PostRepo) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var liked bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&liked)
	if err != nil {
		return false, err
	}

	if liked {
		_, err = tx.Exec(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	} else {
		_, err = tx.Exec(ctx,
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, userID)
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return !liked, nil
}

func (r *PostRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO post_comments (id, post_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Text, comment.CreatedAt,
	)
	return err
}

func (r *PostRepo) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachInteractions(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachInteractions batch-loads like sets and comment logs for the given
// posts. Comments come back newest-first; that ordering is a contract the
// read path relies on.
func (r *PostRepo) attachInteractions(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]*domain.Post, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = &posts[i]
	}

	if err := r.attachLikes(ctx, ids, index); err != nil {
		return err
	}
	return r.attachComments(ctx, ids, index)
}

func (r *PostRepo) attachLikes(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]*domain.Post) error {
	rows, err := r.pool.Query(ctx,
		`SELECT post_id, user_id FROM post_likes WHERE post_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postID, userID uuid.UUID
		if err := rows.Scan(&postID, &userID); err != nil {
			return err
		}
		if p := index[postID]; p != nil {
			p.LikerIDs = append(p.LikerIDs, userID)
		}
	}
	return rows.Err()
}

func (r *PostRepo) attachComments(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]*domain.Post) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, post_id, user_id, body, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at DESC, id DESC`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt); err != nil {
			return err
		}
		if p := index[c.PostID]; p != nil {
			p.Comments = append(p.Comments, c)
		}
	}
	return rows.Err()
}
