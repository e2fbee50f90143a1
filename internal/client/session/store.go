// Package session owns the client's credentials: the persisted token store
// and the guard that every protected page runs when it is mounted.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trademinutes/tmclient/internal/client/repositories/preferences"
	"github.com/trademinutes/tmclient/internal/common"
	"github.com/trademinutes/tmclient/internal/dbx"
)

const preferenceLastEmail = "last_email"

var ErrAuthMissing = errors.New("not logged in")

// Store is the credential store: session token, last used email and the
// theme preference, persisted in the local database. Last write wins.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() preferences.Repository {
	return preferences.NewSQLiteRepository(s.db)
}

// Token returns the stored session token, or ErrAuthMissing.
func (s *Store) Token(ctx context.Context) (string, error) {
	tok, ok, err := s.repo().Get(ctx, common.PreferenceToken)
	if err != nil {
		return "", err
	}
	if !ok || tok == "" {
		return "", ErrAuthMissing
	}
	return tok, nil
}

// SaveSession stores the token and the email it was issued for in one
// transaction.
func (s *Store) SaveSession(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := preferences.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.PreferenceToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, preferenceLastEmail, email)
	})
}

// ClearToken ends the session. The last email and the theme are kept.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo().Delete(ctx, common.PreferenceToken)
}

// LastEmail is the email of the most recent successful login, or "".
func (s *Store) LastEmail(ctx context.Context) (string, error) {
	v, _, err := s.repo().Get(ctx, preferenceLastEmail)
	return v, err
}

// Theme returns the persisted theme preference, "" when unset.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, _, err := s.repo().Get(ctx, common.PreferenceTheme)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	return v, nil
}

func (s *Store) SaveTheme(ctx context.Context, theme string) error {
	return s.repo().Set(ctx, common.PreferenceTheme, theme)
}
