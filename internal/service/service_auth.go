// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

// passwordParams are the argon2id parameters for new hashes. Existing
// hashes carry their own parameters.
var passwordParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// authService issues HS256 access tokens and keeps refresh sessions in the
// session repository. Passwords are stored as argon2id hashes.
type authService struct {
	accounts  store.AccountRepository
	sessions  store.SessionRepository
	ids       IDGenerator
	validator validators.Validator

	hashParams *argon2id.Params

	tokenSignKey    string
	tokenIssuer     string
	tokenDuration   time.Duration
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, sessions store.SessionRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:        accounts,
		sessions:        sessions,
		ids:             ids,
		validator:       validators.NewIdeaValidator(),
		hashParams:      passwordParams,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		refreshDuration: cfg.RefreshDuration,
		logger:          logger,
	}
}

// SignUp validates the credentials, hashes the password and stores the
// account together with a profile of role user. A taken e-mail surfaces as
// store.ErrEmailAlreadyExists.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid sign-up data provided")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := normalizeEmail(req.Email)
	hash, err := argon2id.CreateHash(req.Password, a.hashParams)
	if err != nil {
		return models.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	userID := a.ids.Generate()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = models.NameFromEmail(email)
	}

	account := models.Account{UserID: userID, Email: email, PasswordHash: hash}
	profile := models.Profile{UserID: userID, Name: name, Email: email, Role: models.RoleUser}

	if err := a.accounts.CreateAccount(ctx, account, profile); err != nil {
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.Profile{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("account created")
	return profile, nil
}

// SignIn checks the credentials and issues a session. Unknown e-mails and
// wrong passwords both yield ErrWrongPassword.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindAccountByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Msg("sign-in for unknown email")
		return models.Session{}, ErrWrongPassword
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("account search by email failed: %w", err)
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", account.UserID).Msg("stored password hash is unreadable")
		return models.Session{}, ErrWrongPassword
	}
	if !match {
		log.Info().Str("user_id", account.UserID).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	return a.issueSession(ctx, account.UserID, account.Email)
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	if refreshToken == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	session, err := a.sessions.ConsumeSession(ctx, refreshToken)
	if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrMalformedRecord) {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh session rotation failed: %w", err)
	}

	return a.issueSession(ctx, session.UserID, session.Email)
}

// SignOut revokes the refresh session. An empty or unknown token is not an
// error, so signing out twice succeeds.
func (a *authService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.sessions.RevokeSession(ctx, refreshToken); err != nil {
		return fmt.Errorf("revoke refresh session: %w", err)
	}
	return nil
}

// ParseToken normalises every validation failure to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) issueSession(ctx context.Context, userID, email string) (models.Session, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken := uuid.NewString()
	if err := a.sessions.SaveSession(ctx, refreshToken, models.RefreshSession{UserID: userID, Email: email}, a.refreshDuration); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		AccessToken:  token.SignedString,
		RefreshToken: refreshToken,
		ExpiresAt:    token.ExpiresAt.Time,
		UserID:       userID,
		Email:        email,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
