// Package probe проверяет доступность URL перед постановкой на загрузку.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"uploadman/internal/logger"
	"uploadman/internal/model"
)

type Probe struct {
	client *http.Client
}

func New(client *http.Client) *Probe {
	return &Probe{client: client}
}

// Check делает HEAD-запрос к uri и возвращает model.ErrNotFound, если файл
// недоступен. Ошибка создания запроса (битый URL) тоже считается NotFound:
// такой URL бессмысленно отправлять на сервер.
func (p *Probe) Check(ctx context.Context, uri string) error {
	log := logger.FromContext(ctx).With("op", "probe.Check", "url", uri)

	// Валидация URL
	if _, err := url.ParseRequestURI(uri); err != nil {
		log.Debug("invalid url", "error", err)
		return fmt.Errorf("%w: invalid url: %v", model.ErrNotFound, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, uri, nil)
	if err != nil {
		log.Debug("create request failed", "error", err)
		return fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err)
		return fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("unexpected status", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", model.ErrNotFound, resp.StatusCode)
	}

	return nil
}
