// Package users owns the authoritative user table and the notion of the
// current session user. Every mutation persists the full table to the
// durable store before returning.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/logging"
	"github.com/olehkhomyk/feedline/internal/models"
	"github.com/olehkhomyk/feedline/internal/seed"
	"github.com/olehkhomyk/feedline/internal/storage"
)

// tableKey is the durable-store key the user table lives under.
const tableKey = "users"

// SessionManager is the slice of the session token manager the repository
// needs: start a session for a user id, resolve the active one, clear it.
type SessionManager interface {
	Start(ctx context.Context, userID int64) error
	Current(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

// SignInResult is the single settlement of an asynchronous sign-in: either
// the signed-in user's public snapshot or an error.
type SignInResult struct {
	User models.PublicUser
	Err  error
}

// Repository holds the user table in memory and persists it through the
// durable storage gateway on every mutation.
type Repository struct {
	store    storage.Gateway
	sessions SessionManager
	logger   logging.Logger

	table   []models.User
	current int64 // current session user id, 0 when signed out
}

// NewRepository binds a repository to its durable store and session manager.
func NewRepository(store storage.Gateway, sessions SessionManager, logger logging.Logger) *Repository {
	return &Repository{
		store:    store,
		sessions: sessions,
		logger:   logger.With("repo", "users"),
	}
}

// Initialize rehydrates the user table from the durable store, or builds it
// from the seed list (ids 1..N in list order, follow set {self}, offline)
// and persists it when the store is empty. A malformed payload fails fast.
func (r *Repository) Initialize(ctx context.Context) error {
	payload, err := r.store.Load(ctx, tableKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return r.seedTable(ctx)
		}
		return fmt.Errorf("load user table: %w", err)
	}

	var table []models.User
	if err := json.Unmarshal(payload, &table); err != nil {
		return fmt.Errorf("malformed user table: %w", err)
	}

	r.table = table
	r.logger.Debug(ctx, "user table rehydrated", "users", len(table))
	return nil
}

func (r *Repository) seedTable(ctx context.Context) error {
	for _, su := range seed.Users() {
		id := r.nextID()
		r.table = append(r.table, models.User{
			ID:       id,
			Name:     su.Name,
			Surname:  su.Surname,
			Login:    su.Login,
			Password: su.Password,
			Phone:    su.Phone,
			Mail:     su.Mail,
			Follows:  []int64{id},
		})
	}

	if err := r.persist(ctx); err != nil {
		return err
	}
	r.logger.Info(ctx, "user table seeded", "users", len(r.table))
	return nil
}

// Register creates a user from the profile with the next id, a follow set
// of {self} and online=false, makes it the current session user and
// persists. The login must not already be taken.
func (r *Repository) Register(ctx context.Context, profile models.Profile) (models.PublicUser, error) {
	for i := range r.table {
		if r.table[i].Login == profile.Login {
			return models.PublicUser{}, common.ErrLoginTaken
		}
	}

	id := r.nextID()
	user := models.User{
		ID:       id,
		Name:     profile.Name,
		Surname:  profile.Surname,
		Login:    profile.Login,
		Password: profile.Password,
		Phone:    profile.Phone,
		Mail:     profile.Mail,
		Follows:  []int64{id},
	}
	r.table = append(r.table, user)
	r.current = id

	if err := r.persist(ctx); err != nil {
		return models.PublicUser{}, err
	}

	r.logger.Info(ctx, "user registered", "id", id, "login", profile.Login)
	return user.PublicInfo(), nil
}

// SignIn scans the table in id order for an exact login+password match and
// returns a single-settlement deferred result. The first match becomes the
// current session user and a session token is written; an exhausted scan
// settles with common.ErrInvalidCredentials. The scan completes before the
// method returns, so the channel always carries exactly one settlement.
func (r *Repository) SignIn(ctx context.Context, creds models.Credentials) <-chan SignInResult {
	result := make(chan SignInResult, 1)

	settled := false
	settle := func(res SignInResult) {
		if settled {
			return
		}
		settled = true
		result <- res
	}

	for i := range r.table {
		u := &r.table[i]
		if u.Login != creds.Login || u.Password != creds.Password {
			continue
		}

		if err := r.sessions.Start(ctx, u.ID); err != nil {
			settle(SignInResult{Err: fmt.Errorf("start session: %w", err)})
			continue
		}
		r.current = u.ID
		r.logger.Info(ctx, "signed in", "id", u.ID)
		settle(SignInResult{User: u.PublicInfo()})
	}

	settle(SignInResult{Err: common.ErrInvalidCredentials})
	return result
}

// SignOut marks the current session user offline, persists, and clears the
// session token. Signed-out callers get common.ErrNoSession.
func (r *Repository) SignOut(ctx context.Context) error {
	if r.current == 0 {
		return common.ErrNoSession
	}

	if u := r.rowByID(r.current); u != nil {
		u.Online = false
		if err := r.persist(ctx); err != nil {
			return err
		}
	}

	if err := r.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	r.logger.Info(ctx, "signed out", "id", r.current)
	r.current = 0
	return nil
}

// CheckAuthorization resolves the stored session token against the live
// table. On a match the current user is re-resolved from the table (never
// from a stale snapshot), marked online and persisted; the return value
// reports whether a session is active. An absent, invalid or unmatched
// token is not an error, just an unauthenticated state.
func (r *Repository) CheckAuthorization(ctx context.Context) (bool, error) {
	id, err := r.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) || errors.Is(err, common.ErrInvalidToken) {
			r.current = 0
			return false, nil
		}
		return false, err
	}

	u := r.rowByID(id)
	if u == nil {
		r.logger.Warn(ctx, "session token for unknown user", "id", id)
		r.current = 0
		return false, nil
	}

	u.Online = true
	if err := r.persist(ctx); err != nil {
		return false, err
	}

	r.current = u.ID
	return true, nil
}

// AddFollow adds id to the current session user's follow list. Adding an
// already-followed id is a no-op; an unknown id is common.ErrNotFound.
func (r *Repository) AddFollow(ctx context.Context, id int64) error {
	cur := r.rowByID(r.current)
	if cur == nil {
		return common.ErrNoSession
	}
	if r.rowByID(id) == nil {
		return common.ErrNotFound
	}
	if cur.FollowsUser(id) {
		return nil
	}

	cur.Follows = append(cur.Follows, id)
	return r.persist(ctx)
}

// RemoveFollow removes id from the current session user's follow list.
// Removing an id that is not followed is a no-op.
func (r *Repository) RemoveFollow(ctx context.Context, id int64) error {
	cur := r.rowByID(r.current)
	if cur == nil {
		return common.ErrNoSession
	}

	for i, f := range cur.Follows {
		if f == id {
			cur.Follows = append(cur.Follows[:i], cur.Follows[i+1:]...)
			return r.persist(ctx)
		}
	}
	return nil
}

// UserByID returns the credential-stripped snapshot of the user with the
// given id, or common.ErrNotFound.
func (r *Repository) UserByID(id int64) (models.PublicUser, error) {
	u := r.rowByID(id)
	if u == nil {
		return models.PublicUser{}, common.ErrNotFound
	}
	return u.PublicInfo(), nil
}

// CurrentUser returns the current session user's snapshot, re-resolved from
// the live table on every call.
func (r *Repository) CurrentUser() (models.PublicUser, error) {
	if r.current == 0 {
		return models.PublicUser{}, common.ErrNoSession
	}
	return r.UserByID(r.current)
}

// AllUsers returns a copy of the full user table, credentials included.
// The view is expected to print public fields only.
func (r *Repository) AllUsers() []models.User {
	return append([]models.User(nil), r.table...)
}

func (r *Repository) rowByID(id int64) *models.User {
	for i := range r.table {
		if r.table[i].ID == id {
			return &r.table[i]
		}
	}
	return nil
}

// nextID is max(existing)+1, or 1 for an empty table. Ids are never reused.
func (r *Repository) nextID() int64 {
	var max int64
	for i := range r.table {
		if r.table[i].ID > max {
			max = r.table[i].ID
		}
	}
	return max + 1
}

func (r *Repository) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, tableKey, r.table); err != nil {
		return fmt.Errorf("persist user table: %w", err)
	}
	return nil
}
