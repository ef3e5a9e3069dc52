// Package posts owns the authoritative post table: posts, their comments
// and likes, and the per-viewer personal feed derived from the user
// repository's follow lists. Every mutation persists the full table to the
// durable store before returning.
package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/logging"
	"github.com/olehkhomyk/feedline/internal/models"
	"github.com/olehkhomyk/feedline/internal/seed"
	"github.com/olehkhomyk/feedline/internal/storage"
)

// tableKey is the durable-store key the post table lives under.
const tableKey = "posts"

// UserDirectory is the slice of the user repository the post repository
// needs: the viewer's identity and author lookups.
type UserDirectory interface {
	CurrentUser() (models.PublicUser, error)
	UserByID(id int64) (models.PublicUser, error)
}

// Repository holds the post table in memory and persists it through the
// durable storage gateway on every mutation.
type Repository struct {
	store  storage.Gateway
	users  UserDirectory
	logger logging.Logger

	table []models.Post
	now   func() time.Time // test seam
}

// NewRepository binds a repository to its durable store and user directory.
func NewRepository(store storage.Gateway, users UserDirectory, logger logging.Logger) *Repository {
	return &Repository{
		store:  store,
		users:  users,
		logger: logger.With("repo", "posts"),
		// UTC keeps stored dates identical across a persist/rehydrate cycle.
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Initialize rehydrates the post table from the durable store, or builds it
// from the seed list (authors resolved through the user directory, ids
// assigned sequentially) and persists it when the store is empty. A
// malformed payload fails fast.
func (r *Repository) Initialize(ctx context.Context) error {
	payload, err := r.store.Load(ctx, tableKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return r.seedTable(ctx)
		}
		return fmt.Errorf("load post table: %w", err)
	}

	var table []models.Post
	if err := json.Unmarshal(payload, &table); err != nil {
		return fmt.Errorf("malformed post table: %w", err)
	}

	r.table = table
	r.logger.Debug(ctx, "post table rehydrated", "posts", len(table))
	return nil
}

func (r *Repository) seedTable(ctx context.Context) error {
	for _, sp := range seed.Posts() {
		author, err := r.users.UserByID(sp.AuthorID)
		if err != nil {
			return fmt.Errorf("resolve seed author %d: %w", sp.AuthorID, err)
		}
		r.table = append(r.table, models.Post{
			ID:       r.nextID(),
			Title:    sp.Title,
			Message:  sp.Message,
			User:     author,
			Date:     r.now(),
			Comments: []models.Comment{},
			Likes:    []int64{},
		})
	}

	if err := r.persist(ctx); err != nil {
		return err
	}
	r.logger.Info(ctx, "post table seeded", "posts", len(r.table))
	return nil
}

// AddPost creates a post authored by the current session user. The author
// snapshot is captured at creation time; later profile edits do not
// propagate into the post.
func (r *Repository) AddPost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	author, err := r.users.CurrentUser()
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:       r.nextID(),
		Title:    draft.Title,
		Message:  draft.Message,
		User:     author,
		Date:     r.now(),
		Comments: []models.Comment{},
		Likes:    []int64{},
	}
	r.table = append(r.table, post)

	if err := r.persist(ctx); err != nil {
		return models.Post{}, err
	}

	r.logger.Info(ctx, "post added", "id", post.ID, "author", author.ID)
	return post, nil
}

// Feed computes the current session user's personal feed: for every id in
// the viewer's follow list (which always includes the viewer), every post
// authored by that id, in table insertion order. The result is grouped by
// followed author in follow-list order, not globally chronological.
func (r *Repository) Feed(ctx context.Context) ([]models.Post, error) {
	viewer, err := r.users.CurrentUser()
	if err != nil {
		return nil, err
	}

	feed := make([]models.Post, 0, len(r.table))
	for _, followed := range viewer.Follows {
		for i := range r.table {
			if r.table[i].User.ID == followed {
				feed = append(feed, r.table[i])
			}
		}
	}

	r.logger.Debug(ctx, "feed computed", "viewer", viewer.ID, "posts", len(feed))
	return feed, nil
}

// AddComment appends the comment to the post it references, resolving the
// commenter display name from the current session user. An unknown post id
// is common.ErrNotFound and leaves the table unchanged.
func (r *Repository) AddComment(ctx context.Context, comment models.Comment) error {
	post := r.rowByID(comment.PostID)
	if post == nil {
		return common.ErrNotFound
	}

	commenter, err := r.users.CurrentUser()
	if err != nil {
		return err
	}

	comment.UserName = commenter.Name
	if comment.Date.IsZero() {
		comment.Date = r.now()
	}
	post.Comments = append(post.Comments, comment)

	return r.persist(ctx)
}

// Like toggles the current session user's membership in the post's likes
// set: present removes it, absent appends it. An unknown post id is
// common.ErrNotFound.
func (r *Repository) Like(ctx context.Context, postID int64) error {
	viewer, err := r.users.CurrentUser()
	if err != nil {
		return err
	}

	post := r.rowByID(postID)
	if post == nil {
		return common.ErrNotFound
	}

	if post.LikedBy(viewer.ID) {
		for i, id := range post.Likes {
			if id == viewer.ID {
				post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
				break
			}
		}
	} else {
		post.Likes = append(post.Likes, viewer.ID)
	}

	return r.persist(ctx)
}

// AllPosts returns a copy of the full post table in insertion order.
func (r *Repository) AllPosts() []models.Post {
	return append([]models.Post(nil), r.table...)
}

func (r *Repository) rowByID(id int64) *models.Post {
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
		return fmt.Errorf("persist post table: %w", err)
	}
	return nil
}
