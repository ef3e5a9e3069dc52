// Package session manages the current-session token: an HS256 JWT carrying
// the signed-in user's id, kept in the volatile storage domain. The token
// holds the id only; the user snapshot is always re-resolved from the live
// user table, so it can never go stale.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/storage"
)

// tokenKey is the volatile-store key the session token lives under.
const tokenKey = "currentUser"

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Manager issues, verifies and clears session tokens.
type Manager struct {
	store    storage.Gateway
	secret   []byte
	validity time.Duration
}

// NewManager binds a manager to the volatile store.
func NewManager(store storage.Gateway, secret []byte, validity time.Duration) *Manager {
	return &Manager{store: store, secret: secret, validity: validity}
}

// Start issues a token for userID and writes it to the volatile store,
// replacing any previous session.
func (m *Manager) Start(ctx context.Context, userID int64) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	return m.store.Save(ctx, tokenKey, signed)
}

// Current returns the user id of the active session. It reports
// common.ErrNoSession when no token is stored and common.ErrInvalidToken
// when the stored token fails verification or has expired.
func (m *Manager) Current(ctx context.Context) (int64, error) {
	payload, err := m.store.Load(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrNoSession
		}
		return 0, err
	}

	var signed string
	if err := json.Unmarshal(payload, &signed); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}

// Clear removes the session token.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Remove(ctx, tokenKey)
}
