package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/stretchr/testify/require"
)

const testKey = "anon-key"

func newTestCollection(t *testing.T, handler http.HandlerFunc) *Collection {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewCollection(srv.URL, testKey, "messages", srv.Client())
	require.NoError(t, err)
	return c
}

func requireAuth(t *testing.T, r *http.Request) {
	t.Helper()
	require.Equal(t, testKey, r.Header.Get("apikey"))
	require.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
}

func TestNewCollection(t *testing.T) {
	t.Run("should refuse missing endpoint or credential", func(t *testing.T) {
		req := require.New(t)
		_, err := NewCollection("", testKey, "messages", nil)
		req.ErrorIs(err, domain.ErrNotConfigured)
		_, err = NewCollection("https://example.supabase.co", "", "messages", nil)
		req.ErrorIs(err, domain.ErrNotConfigured)
	})

	t.Run("should reject a url without scheme", func(t *testing.T) {
		_, err := NewCollection("example.supabase.co", testKey, "messages", nil)
		require.Error(t, err)
	})
}

func TestCollection_List(t *testing.T) {
	ctx := context.Background()

	t.Run("should query newest first and decode numeric ids", func(t *testing.T) {
		req := require.New(t)
		c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
			requireAuth(t, r)
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/rest/v1/messages", r.URL.Path)
			require.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id": 2, "content": "hi", "created_at": "2024-05-01T12:01:00Z"},
				{"id": 1, "content": "hello", "created_at": "2024-05-01T12:00:00Z"}
			]`))
		})

		messages, err := c.List(ctx)

		req.NoError(err)
		req.Len(messages, 2)
		req.Equal(domain.MessageID("2"), messages[0].ID)
		req.Equal("hi", messages[0].Content)
		req.Equal(domain.MessageID("1"), messages[1].ID)
		req.True(messages[0].CreatedAt.Equal(time.Date(2024, 5, 1, 12, 1, 0, 0, time.UTC)))
	})

	t.Run("should map a null id to the zero id", func(t *testing.T) {
		req := require.New(t)
		c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id": null, "content": "orphan", "created_at": "2024-05-01T12:00:00Z"}]`))
		})

		messages, err := c.List(ctx)

		req.NoError(err)
		req.Len(messages, 1)
		req.True(messages[0].ID.IsZero())
		req.NotEqual(domain.MessageID("null"), messages[0].ID)
	})

	t.Run("should surface the PostgREST message as the reason", func(t *testing.T) {
		req := require.New(t)
		c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"42501","message":"permission denied for table messages"}`))
		})

		_, err := c.List(ctx)

		var apiErr *APIError
		req.ErrorAs(err, &apiErr)
		req.Equal(http.StatusUnauthorized, apiErr.Status)
		req.Equal("permission denied for table messages", err.Error())
	})

	t.Run("should fall back to the status text", func(t *testing.T) {
		c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.List(ctx)

		require.EqualError(t, err, "502 Bad Gateway")
	})
}

func TestCollection_Create(t *testing.T) {
	req := require.New(t)
	c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "hello there", body["content"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"6b1f","content":"hello there","created_at":"2024-05-01T12:00:00Z"}]`))
	})

	msg, err := c.Create(context.Background(), "hello there")

	req.NoError(err)
	req.Equal(domain.MessageID("6b1f"), msg.ID)
	req.Equal("hello there", msg.Content)
}

func TestCollection_CreateWithoutID(t *testing.T) {
	c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":null,"content":"hello","created_at":"2024-05-01T12:00:00Z"}]`))
	})

	_, err := c.Create(context.Background(), "hello")

	require.EqualError(t, err, "insert returned a row without id")
}

func TestCollection_Delete(t *testing.T) {
	req := require.New(t)
	c := newTestCollection(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "eq.42", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	req.NoError(c.Delete(context.Background(), "42"))
}
