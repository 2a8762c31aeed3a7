package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestLogger_Middleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()
	ctx := humatest.NewContext(&huma.Operation{}, r, w)

	nextCalled := false
	New(log).Middleware()(ctx, func(ctx huma.Context) {
		nextCalled = true
		ctx.SetStatus(http.StatusOK)
	})

	assert.True(t, nextCalled)
	assert.Contains(t, buf.String(), `"method":"GET"`)
	assert.Contains(t, buf.String(), `"path":"/api/posts"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestLogger_Middleware_RejectedRequest(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
	w := httptest.NewRecorder()
	ctx := humatest.NewContext(&huma.Operation{}, r, w)

	// A downstream guard rejects without calling its own next, the way
	// the auth middleware does for missing credentials.
	reject := func(ctx huma.Context, next func(huma.Context)) {
		ctx.SetStatus(http.StatusUnauthorized)
	}

	New(log).Middleware()(ctx, func(ctx huma.Context) {
		reject(ctx, func(huma.Context) {
			t.Fatal("guard must not pass the request through")
		})
	})

	assert.Contains(t, buf.String(), `"status":401`)
	assert.Contains(t, buf.String(), `"path":"/api/journal"`)
}
