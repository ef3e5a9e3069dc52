package posts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/logging"
	"github.com/olehkhomyk/feedline/internal/models"
	"github.com/olehkhomyk/feedline/internal/repositories/users"
	"github.com/olehkhomyk/feedline/internal/session"
	"github.com/olehkhomyk/feedline/internal/storage"
	"github.com/olehkhomyk/feedline/internal/storage/memory"
)

type fixture struct {
	posts   *Repository
	users   *users.Repository
	durable storage.Gateway
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	durable := memory.New()
	sessions := session.NewManager(memory.New(), []byte("test-secret"), time.Hour)
	logger := logging.NewJSONLogger(io.Discard, slog.LevelError)

	ur := users.NewRepository(durable, sessions, logger)
	require.NoError(t, ur.Initialize(ctx))

	pr := NewRepository(durable, ur, logger)
	require.NoError(t, pr.Initialize(ctx))

	return &fixture{posts: pr, users: ur, durable: durable}
}

func (f *fixture) signIn(t *testing.T, login, password string) {
	t.Helper()
	res := <-f.users.SignIn(context.Background(), models.Credentials{Login: login, Password: password})
	require.NoError(t, res.Err)
}

func authorIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.User.ID)
	}
	return ids
}

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestInitialize_SeedsPosts(t *testing.T) {
	f := setup(t)

	all := f.posts.AllPosts()
	require.Len(t, all, 7)

	var last int64
	for _, p := range all {
		require.Greater(t, p.ID, last, "ids strictly increasing")
		require.NotZero(t, p.User.ID, "author snapshot resolved")
		require.Empty(t, p.Comments)
		require.Empty(t, p.Likes)
		last = p.ID
	}
	require.Equal(t, []int64{2, 2, 3, 1, 3, 2, 1}, authorIDs(all))
}

func TestInitialize_RoundTripReproducesTable(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.signIn(t, "oleg", "111")
	_, err := f.posts.AddPost(ctx, models.PostDraft{Title: "t", Message: "m"})
	require.NoError(t, err)
	require.NoError(t, f.posts.Like(ctx, 1))

	logger := logging.NewJSONLogger(io.Discard, slog.LevelError)
	reloaded := NewRepository(f.durable, f.users, logger)
	require.NoError(t, reloaded.Initialize(ctx))

	require.Equal(t, f.posts.AllPosts(), reloaded.AllPosts())
}

func TestInitialize_MalformedPayloadFailsFast(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.durable.Save(ctx, "posts", 42))

	logger := logging.NewJSONLogger(io.Discard, slog.LevelError)
	broken := NewRepository(f.durable, f.users, logger)
	require.ErrorContains(t, broken.Initialize(ctx), "malformed post table")
}

func TestAddPost_RequiresSession(t *testing.T) {
	f := setup(t)

	_, err := f.posts.AddPost(context.Background(), models.PostDraft{Title: "t"})
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestAddPost_AssignsNextID(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signIn(t, "oleg", "111")

	p, err := f.posts.AddPost(ctx, models.PostDraft{Title: "hello", Message: "world"})
	require.NoError(t, err)
	require.Equal(t, int64(8), p.ID)
	require.Equal(t, int64(1), p.User.ID)
	require.Empty(t, p.Comments)
	require.Empty(t, p.Likes)
	require.False(t, p.Date.IsZero())

	q, err := f.posts.AddPost(ctx, models.PostDraft{Title: "again"})
	require.NoError(t, err)
	require.Equal(t, int64(9), q.ID)
}

func TestFeed_GroupedByFollowOrder(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// oleg follows {1}; add author 3; author 2 stays unfollowed
	f.signIn(t, "oleg", "111")
	require.NoError(t, f.users.AddFollow(ctx, 3))

	feed, err := f.posts.Feed(ctx)
	require.NoError(t, err)

	// own posts first (follow-list order), then author 3's, each group in
	// table insertion order; nothing from unfollowed author 2
	require.Equal(t, []int64{4, 7, 3, 5}, postIDs(feed))
	require.Equal(t, []int64{1, 1, 3, 3}, authorIDs(feed))
}

func TestFeed_UnfollowExcludesPosts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.signIn(t, "oleg", "111")
	require.NoError(t, f.users.AddFollow(ctx, 2))

	feed, err := f.posts.Feed(ctx)
	require.NoError(t, err)
	require.Contains(t, authorIDs(feed), int64(2))

	require.NoError(t, f.users.RemoveFollow(ctx, 2))

	feed, err = f.posts.Feed(ctx)
	require.NoError(t, err)
	require.NotContains(t, authorIDs(feed), int64(2))
	require.Equal(t, []int64{4, 7}, postIDs(feed))
}

func TestFeed_RequiresSession(t *testing.T) {
	f := setup(t)

	_, err := f.posts.Feed(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestLike_Toggle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signIn(t, "oleg", "111")

	require.NoError(t, f.posts.Like(ctx, 1))
	require.Equal(t, []int64{1}, f.posts.AllPosts()[0].Likes)

	// a second like with no other mutation in between reverts the set
	require.NoError(t, f.posts.Like(ctx, 1))
	require.Empty(t, f.posts.AllPosts()[0].Likes)
}

func TestLike_NoDuplicateEntries(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.signIn(t, "oleg", "111")
	require.NoError(t, f.posts.Like(ctx, 2))
	f.signIn(t, "petya", "222")
	require.NoError(t, f.posts.Like(ctx, 2))

	require.Equal(t, []int64{1, 2}, f.posts.AllPosts()[1].Likes)
}

func TestLike_UnknownPost(t *testing.T) {
	f := setup(t)
	f.signIn(t, "oleg", "111")

	require.ErrorIs(t, f.posts.Like(context.Background(), 999), common.ErrNotFound)
}

func TestAddComment_AppendsWithCommenterName(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signIn(t, "oleg", "111")

	require.NoError(t, f.posts.AddComment(ctx, models.Comment{PostID: 1, Message: "nice"}))
	require.NoError(t, f.posts.AddComment(ctx, models.Comment{PostID: 1, Message: "again"}))

	comments := f.posts.AllPosts()[0].Comments
	require.Len(t, comments, 2)
	require.Equal(t, "nice", comments[0].Message)
	require.Equal(t, "again", comments[1].Message)
	require.Equal(t, "Oleh", comments[0].UserName)
	require.False(t, comments[0].Date.IsZero())
}

func TestAddComment_UnknownPostLeavesTableUnchanged(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signIn(t, "oleg", "111")

	before := f.posts.AllPosts()
	err := f.posts.AddComment(ctx, models.Comment{PostID: 999, Message: "lost"})
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Equal(t, before, f.posts.AllPosts())
}

func TestAddPost_AuthorSnapshotIsCopy(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.signIn(t, "oleg", "111")

	p, err := f.posts.AddPost(ctx, models.PostDraft{Title: "snap"})
	require.NoError(t, err)
	require.False(t, p.User.Online)

	// the author going online later must not leak into the stored snapshot
	ok, err := f.users.CheckAuthorization(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	stored := f.posts.AllPosts()[len(f.posts.AllPosts())-1]
	require.False(t, stored.User.Online)
}
