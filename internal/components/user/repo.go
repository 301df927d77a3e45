package user

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

type (
	repoer interface {
		Create(ctx context.Context, username, passwordHash string) (*User, error)
		GetByUsername(ctx context.Context, username string) (*User, error)
	}

	// poolIface is the subset of pgxpool.Pool the repo actually uses;
	// pgxmock stands in for it in tests.
	poolIface interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}

	repo struct {
		pool poolIface
	}
)

func NewRepo(pool *pgxpool.Pool) repoer {
	return &repo{pool: pool}
}

// Create inserts a credential record and returns it with the store-assigned id.
// A unique-constraint violation on the username maps to ErrUserExists; the
// constraint is the authoritative duplicate guard, regardless of any pre-check.
func (r *repo) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	stmt := `
	INSERT INTO users (username, password_hash)
	VALUES ($1, $2)
	RETURNING id, username, password_hash`

	created := new(User)
	err := r.pool.QueryRow(ctx, stmt, username, passwordHash).Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return created, nil
}

func (r *repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	stmt := `
	SELECT id, username, password_hash
	FROM users
	WHERE username = $1`

	var u User
	err := r.pool.QueryRow(ctx, stmt, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}
