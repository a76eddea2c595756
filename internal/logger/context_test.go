package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestContext(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil)).With("run", "test-run")

		ctx := Context(context.Background(), log)
		FromContext(ctx).Info("hello")

		be.True(t, strings.Contains(buf.String(), "run=test-run"))
	})

	t.Run("fallback_to_default", func(t *testing.T) {
		got := FromContext(context.Background())
		be.Equal(t, got, slog.Default())
	})
}
