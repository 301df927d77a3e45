package user

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type (
	servicer interface {
		Register(ctx context.Context, req CredentialsIn) (*RegisterOut, error)
		Login(ctx context.Context, req CredentialsIn) (string, error)
	}

	service struct {
		repo   repoer
		issuer *Issuer
	}
)

func NewService(repo repoer, issuer *Issuer) servicer {
	return &service{
		repo:   repo,
		issuer: issuer,
	}
}

// Register validates the credentials, stores a hashed record and returns the
// public view of the new user together with a token bound to its id.
func (s *service) Register(ctx context.Context, req CredentialsIn) (*RegisterOut, error) {
	if errs := Validate(req.Username, req.Password); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// Pre-check for a friendly duplicate answer. Two concurrent registrations
	// can both pass this lookup; the unique constraint on insert settles it.
	_, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issuer.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterOut{
		ID:       created.ID,
		Username: created.Username,
		Token:    token,
	}, nil
}

// Login validates the credentials, checks them against the stored record and
// returns a token alone. Unlike Register it carries no user payload.
func (s *service) Login(ctx context.Context, req CredentialsIn) (string, error) {
	if errs := Validate(req.Username, req.Password); len(errs) > 0 {
		return "", &ValidationError{Errors: errs}
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(req.Password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(u.ID)
}
