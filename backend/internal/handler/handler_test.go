package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/require"
)

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

type testHandlers struct {
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	like    *MockLikeService
	health  *MockHealthChecker
}

// newTestRouter mounts the handlers the way the router package does,
// with a stub in place of token checking.
func newTestRouter(m testHandlers) http.Handler {
	if m.thread == nil {
		m.thread = &MockThreadService{}
	}
	if m.comment == nil {
		m.comment = &MockCommentService{}
	}
	if m.reply == nil {
		m.reply = &MockReplyService{}
	}
	if m.like == nil {
		m.like = &MockLikeService{}
	}
	if m.health == nil {
		m.health = &MockHealthChecker{}
	}
	h := New(m.thread, m.comment, m.reply, m.like, m.health)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Test-User") != "" {
				r = r.WithContext(mw.WithUser(r.Context(), testUser))
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Post("/v1/threads", h.CreateThread)
	r.Get("/v1/threads/{threadId}", h.GetThread)
	r.Post("/v1/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/v1/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/v1/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	r.Put("/v1/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authed {
		req.Header.Set("X-Test-User", "1")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// envelope decodes a response keeping data raw.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func requireFail(t *testing.T, rr *httptest.ResponseRecorder, status int) envelope {
	t.Helper()
	require.Equal(t, status, rr.Code, rr.Body.String())
	env := decode(t, rr)
	if status >= 500 {
		require.Equal(t, api.StatusError, env.Status)
	} else {
		require.Equal(t, api.StatusFail, env.Status)
	}
	require.NotEmpty(t, env.Message)
	return env
}
