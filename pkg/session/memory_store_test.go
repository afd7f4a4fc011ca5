package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := session.NewMemoryStore().Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("upsert rejects invalid records", func(t *testing.T) {
		s := session.NewMemoryStore()
		assert.ErrorIs(t, s.Upsert(ctx, nil), session.ErrInvalidSession)
		assert.ErrorIs(t, s.Upsert(ctx, &session.Record{}), session.ErrInvalidSession)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := session.NewMemoryStore()
		require.NoError(t, s.Upsert(ctx, &session.Record{Token: "a", Data: []byte("abc")}))

		rec, err := s.Get(ctx, "a")
		require.NoError(t, err)
		rec.Data[0] = 'X'
		rec.Expires = 42

		again, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again.Data)
		assert.Zero(t, again.Expires)
	})

	t.Run("upsert keeps user binding", func(t *testing.T) {
		s := session.NewMemoryStore()
		require.NoError(t, s.Upsert(ctx, &session.Record{Token: "a", Expires: 1}))
		require.NoError(t, s.SetUserID(ctx, "a", 7))

		uid := int64(99)
		require.NoError(t, s.Upsert(ctx, &session.Record{Token: "a", Expires: 2, UserID: &uid}))

		rec, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.NotNil(t, rec.UserID)
		assert.Equal(t, int64(7), *rec.UserID)
		assert.Equal(t, int64(2), rec.Expires)
	})

	t.Run("set user on missing token is a no-op", func(t *testing.T) {
		s := session.NewMemoryStore()
		require.NoError(t, s.SetUserID(ctx, "ghost", 1))
		total, _, _ := s.Stats()
		assert.Zero(t, total)
	})

	t.Run("delete missing is not an error", func(t *testing.T) {
		assert.NoError(t, session.NewMemoryStore().Delete(ctx, "nope", session.CleanDestroy))
	})

	t.Run("clear user id", func(t *testing.T) {
		s := session.NewMemoryStore()
		for _, tok := range []string{"current", "other", "stranger", "anon"} {
			require.NoError(t, s.Upsert(ctx, &session.Record{Token: tok}))
		}
		require.NoError(t, s.SetUserID(ctx, "current", 1))
		require.NoError(t, s.SetUserID(ctx, "other", 1))
		require.NoError(t, s.SetUserID(ctx, "stranger", 2))

		require.NoError(t, s.ClearUserID(ctx, 1, "current"))

		_, err := s.Get(ctx, "other")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		cur, err := s.Get(ctx, "current")
		require.NoError(t, err)
		assert.False(t, cur.IsAuthenticated())

		stranger, err := s.Get(ctx, "stranger")
		require.NoError(t, err)
		assert.True(t, stranger.IsAuthenticated())

		total, authenticated, anonymous := s.Stats()
		assert.Equal(t, 3, total)
		assert.Equal(t, 1, authenticated)
		assert.Equal(t, 2, anonymous)
	})
}
