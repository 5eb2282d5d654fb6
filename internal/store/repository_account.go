// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

// accountRepository is the PostgreSQL implementation of [AccountRepository].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{db: db, logger: logger}
}

// CreateAccount inserts the account and its profile in one transaction, so a
// freshly signed-up user always has a profile.
//
// A unique violation on the e-mail maps to [ErrEmailAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createAccount, account.UserID, account.Email, account.PasswordHash); err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}

		row := tx.QueryRowContext(ctx, createProfile, profile.UserID, profile.Name, profile.Email, string(profile.Role))
		if _, err := scanProfile(row); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")
		return err
	}

	return nil
}

// FindAccountByEmail looks the account up case-insensitively.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByEmail", findAccountByEmail, email)
}

func (r *accountRepository) FindAccountByID(ctx context.Context, userID string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByID", findAccountByID, userID)
}

func (r *accountRepository) findAccount(ctx context.Context, caller, query, arg string) (models.Account, error) {
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&account.UserID, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return account, nil
}
