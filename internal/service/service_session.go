// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/store"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
)

// idGenerator issues new guest identifiers.
type idGenerator interface {
	Generate() string
}

// sessionService is the concrete implementation of SessionService.
// Guests are identified by a signed JWT whose subject is the guest ID; the
// Redis session record lets the server expire or revoke a guest early.
type sessionService struct {
	// sessions is the session record store.
	sessions store.SessionStore

	// ids generates IDs for new guests.
	ids idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionTTL controls how long a token and its record stay valid.
	sessionTTL time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService from the App settings.
func NewSessionService(sessions store.SessionStore, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions:     sessions,
		ids:          utils.NewUUIDGenerator(),
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		sessionTTL:   cfg.SessionTTL,
		logger:       logger,
	}
}

// EnsureSession implements [SessionService].
//
// A valid existing token keeps its guest ID, so the guest keeps its quote;
// the session record is extended, or recreated if it already expired. An
// empty or invalid token starts a new guest. Either way a token with a
// fresh expiry is returned.
func (s *sessionService) EnsureSession(ctx context.Context, existingToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	guestID := ""
	if existingToken != "" {
		token, err := utils.ValidateAndParseGuestToken(existingToken, s.tokenSignKey, s.tokenIssuer)
		if err != nil {
			log.Debug().Err(err).Str("func", "sessionService.EnsureSession").Msg("existing token rejected, starting a new guest")
		} else {
			guestID = token.GuestID
		}
	}

	if guestID != "" {
		err := s.sessions.TouchSession(ctx, guestID, s.sessionTTL)
		switch {
		case err == nil:
			return s.issueToken(guestID)
		case !errors.Is(err, store.ErrSessionNotFound):
			log.Err(err).Str("func", "sessionService.EnsureSession").Str("guest_id", guestID).Msg("error extending session")
			return models.Token{}, fmt.Errorf("error extending session: %w", err)
		}
	} else {
		guestID = s.ids.Generate()
	}

	now := time.Now()
	session := models.Session{GuestID: guestID, CreatedAt: now, ExpiresAt: now.Add(s.sessionTTL)}
	if err := s.sessions.SaveSession(ctx, session, s.sessionTTL); err != nil {
		log.Err(err).Str("func", "sessionService.EnsureSession").Str("guest_id", guestID).Msg("error saving session")
		return models.Token{}, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().Str("func", "sessionService.EnsureSession").Str("guest_id", guestID).Msg("session started")
	return s.issueToken(guestID)
}

// ParseSession implements [SessionService].
func (s *sessionService) ParseSession(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrNoSession
	}

	token, err := utils.ValidateAndParseGuestToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if _, err = s.sessions.GetSession(ctx, token.GuestID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", fmt.Errorf("%w: %w", ErrNoSession, err)
		}
		return "", fmt.Errorf("error getting session: %w", err)
	}

	return token.GuestID, nil
}

func (s *sessionService) issueToken(guestID string) (models.Token, error) {
	token, err := utils.GenerateGuestToken(s.tokenIssuer, guestID, s.sessionTTL, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing session token: %w", err)
	}
	return token, nil
}
