package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ripplehq/ripple/internal/domain"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = "id, name, email, password_hash, bio, created_at, updated_at"

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash,
		user.Bio, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *UserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $2, bio = $3, updated_at = $4
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Bio, user.UpdatedAt)
	return err
}

func (r *UserRepo) Search(ctx context.Context, query string, limit int) ([]domain.User, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		rows, err = r.pool.Query(ctx,
			"SELECT "+userColumns+" FROM users ORDER BY created_at DESC LIMIT $1", limit)
	} else {
		rows, err = r.pool.Query(ctx,
			"SELECT "+userColumns+` FROM users
			WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC LIMIT $2`, query, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *UserRepo) Connections(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.scanIDs(ctx,
		`SELECT connection_id FROM user_connections WHERE user_id = $1`, userID)
}

func (r *UserRepo) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.scanIDs(ctx,
		`SELECT follower_id FROM user_followers WHERE user_id = $1`, userID)
}

func (r *UserRepo) IsConnected(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	var connected bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_connections WHERE user_id = $1 AND connection_id = $2)`,
		userID, targetID,
	).Scan(&connected)
	return connected, err
}

// ToggleConnection flips the userID→targetID edge. The caller's connections
// row and the target's followers row always change together inside one
// transaction, so the two sets can never be observed out of sync.
func (r *UserRepo) ToggleConnection(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var connected bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_connections WHERE user_id = $1 AND connection_id = $2)`,
		userID, targetID,
	).Scan(&connected)
	if err != nil {
		return false, err
	}

	if connected {
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_connections WHERE user_id = $1 AND connection_id = $2`,
			userID, targetID); err != nil {
			return false, err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_followers WHERE user_id = $1 AND follower_id = $2`,
			targetID, userID); err != nil {
			return false, err
		}
	} else {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_connections (user_id, connection_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, targetID); err != nil {
			return false, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_followers (user_id, follower_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			targetID, userID); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return !connected, nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Bio, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) scanIDs(ctx context.Context, query string, arg any) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Bio, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
