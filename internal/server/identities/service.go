package identities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/server/auth"
	"github.com/irlquest/server/internal/server/config"
)

// Service implements registration, credential verification, token issuance
// and profile updates on top of the identity repository.
type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new identity. The email uniqueness check runs before the
// insert; a collision yields common.ErrEmailTaken and no record is created.
func (s *Service) Register(ctx context.Context, email, username, password string) (*Identity, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	identity := &Identity{
		Email:          email,
		Username:       username,
		HashedPassword: hash,
	}

	identity, err = s.repo.Create(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("error creating identity: %w", err)
	}

	return identity, nil
}

// Login resolves the identity by email first and falls back to username,
// then verifies the password. Every client-visible failure is the same
// common.ErrorUnauthorized so callers cannot tell an unknown login from a
// wrong password.
func (s *Service) Login(ctx context.Context, login string, password string) (string, error) {

	identity, err := s.repo.GetByEmail(ctx, login)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInternal
		}
		identity, err = s.repo.GetByUsername(ctx, login)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return "", common.ErrorUnauthorized
			}
			return "", common.ErrorInternal
		}
	}

	if !auth.CheckPassword(identity.HashedPassword, password) {
		return "", common.ErrorUnauthorized
	}

	return s.IssueToken(identity)
}

// IssueToken signs an access token for the identity, subject = email.
func (s *Service) IssueToken(identity *Identity) (string, error) {
	token, err := auth.GenerateToken(identity.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// UpdateProfile applies a partial profile update for the identity: a nil
// field is left untouched, a present password is re-hashed before storage.
func (s *Service) UpdateProfile(ctx context.Context, id int64, username *string, password *string) (*Identity, error) {

	var hash *string
	if password != nil {
		h, err := auth.HashPassword(*password)
		if err != nil {
			return nil, common.ErrorInternal
		}
		hash = &h
	}

	identity, err := s.repo.Update(ctx, id, username, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating identity: %w", err)
	}

	return identity, nil
}

// GetByEmail is used by the request boundary to resolve a verified token
// subject into a concrete identity.
func (s *Service) GetByEmail(ctx context.Context, email string) (*Identity, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Identity, error) {
	return s.repo.GetByID(ctx, id)
}
