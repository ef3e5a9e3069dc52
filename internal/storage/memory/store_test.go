package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olehkhomyk/feedline/internal/common"
)

func TestSaveAndLoad(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session", map[string]string{"token": "abc"}))

	payload, err := store.Load(ctx, "session")
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"abc"}`, string(payload))
}

func TestLoad_Absent_NotFound(t *testing.T) {
	store := New()

	_, err := store.Load(context.Background(), "session")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRemove(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session", "tok"))
	require.NoError(t, store.Remove(ctx, "session"))

	_, err := store.Load(ctx, "session")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestClose_DropsContents(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session", "tok"))
	require.NoError(t, store.Close())

	_, err := store.Load(ctx, "session")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestLoad_ReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", "value"))

	payload, err := store.Load(ctx, "k")
	require.NoError(t, err)
	payload[0] = 'X'

	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.JSONEq(t, `"value"`, string(again))
}
