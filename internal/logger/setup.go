package logger

import (
	"log/slog"
	"os"

	"uploadman/internal/config"
)

// SetupDefault настраивает глобальный slog-логгер. Логи идут в stderr,
// чтобы не мешаться с выводом прогресса на stdout.
func SetupDefault(cfg config.Logger) {
	if cfg.Plaintext {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})))
	}
}
