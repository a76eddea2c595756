package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nalgeon/be"

	"uploadman/internal/model"
)

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, r.Method, http.MethodHead)
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	p := New(srv.Client())
	ctx := context.Background()

	t.Run("reachable", func(t *testing.T) {
		err := p.Check(ctx, srv.URL+"/ok")
		be.Err(t, err, nil)
	})

	t.Run("http_error_status", func(t *testing.T) {
		err := p.Check(ctx, srv.URL+"/gone")
		be.Err(t, err, model.ErrNotFound)
	})

	t.Run("invalid_url", func(t *testing.T) {
		err := p.Check(ctx, "not a url")
		be.Err(t, err, model.ErrNotFound)
	})

	t.Run("connection_refused", func(t *testing.T) {
		err := p.Check(ctx, "http://127.0.0.1:1/file.mp4")
		be.Err(t, err, model.ErrNotFound)
	})
}
