// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login, and issues the signed
// session tokens consumed by the HTTP layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelis/daybook/internal/common"
	"github.com/avelis/daybook/internal/server/auth"
	"github.com/avelis/daybook/internal/server/models"
	"github.com/avelis/daybook/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: hash the password and create the credential record
// - Login: verify credentials and mint a session token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	codec       *auth.TokenCodec
}

// NewUserService constructs a UserService from its collaborators.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, codec *auth.TokenCodec) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		codec:       codec,
	}
}

// Register hashes the password and creates a new credential record. A
// duplicate email surfaces as common.ErrDuplicateIdentity; a hashing
// failure is an internal error, never an invalid-credentials condition.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed session token. An unknown email and a wrong password
// produce the same common.ErrInvalidCredentials so callers cannot
// enumerate registered identities.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.ID, user.Username)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
