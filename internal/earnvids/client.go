// Package earnvids — клиент удалённого API загрузок: создание папок и
// постановка URL-ов на серверную загрузку (сервер сам скачивает файл,
// байты через этот процесс не проходят).
package earnvids

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"uploadman/internal/config"
	"uploadman/internal/logger"
	"uploadman/internal/model"
)

// Prober проверяет доступность URL перед отправкой на сервер.
type Prober interface {
	Check(ctx context.Context, uri string) error
}

type Client struct {
	cfg     config.API
	client  *http.Client
	limiter *rate.Limiter
	prober  Prober
}

func New(cfg config.API, client *http.Client, prober Prober) *Client {
	// Retries < 1 оставил бы цикл повторов без единой попытки
	if cfg.Retries < 1 {
		cfg.Retries = 1
	}
	return &Client{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(cfg.RateEvery), cfg.RateBurst),
		prober:  prober,
	}
}

// apiResponse — общая форма ответа API: {"result": {...}} при успехе,
// {"message": "..."} при ошибке.
type apiResponse struct {
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

// CreateFolder создаёт удалённую папку и возвращает её id.
// parentID == 0 означает корень.
func (c *Client) CreateFolder(ctx context.Context, name string, parentID int64) (int64, error) {
	log := logger.FromContext(ctx).With("op", "earnvids.CreateFolder", "folder", name)

	params := url.Values{}
	params.Set("key", c.cfg.Key)
	params.Set("name", name)
	params.Set("parent_id", strconv.FormatInt(parentID, 10))

	resp, err := c.call(ctx, log, "/folder/create", params)
	if err != nil {
		return 0, err
	}

	if len(resp.Result) == 0 {
		return 0, apiError(resp.Message)
	}

	var result struct {
		FldID int64 `json:"fld_id"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil || result.FldID == 0 {
		return 0, fmt.Errorf("%w: result without fld_id", model.ErrAPI)
	}

	log.Info("folder created", "fld_id", result.FldID)
	return result.FldID, nil
}

// UploadURL ставит URL на серверную загрузку в папку folderID.
// Перед отправкой проверяет доступность файла; недоступный файл — это
// model.ErrNotFound без единого запроса к API.
func (c *Client) UploadURL(ctx context.Context, fileURL string, folderID int64) error {
	log := logger.FromContext(ctx).With("op", "earnvids.UploadURL", "url", fileURL)

	if err := c.prober.Check(ctx, fileURL); err != nil {
		log.Warn("file is not reachable", "error", err)
		return err
	}

	params := url.Values{}
	params.Set("key", c.cfg.Key)
	params.Set("url", fileURL)
	params.Set("fld_id", strconv.FormatInt(folderID, 10))

	resp, err := c.call(ctx, log, "/upload/url", params)
	if err != nil {
		return err
	}

	if len(resp.Result) == 0 {
		return apiError(resp.Message)
	}

	log.Info("upload submitted")
	return nil
}

// call выполняет GET-запрос к API с повторами. Повторяются transport-ошибки,
// 503 и нечитаемое тело ответа; пауза между попытками растёт линейно
// (RetryDelay * номер попытки). Ответ, который удалось разобрать,
// возвращается как есть — разбор полей остаётся за вызывающим.
func (c *Client) call(ctx context.Context, log *slog.Logger, endpoint string, params url.Values) (*apiResponse, error) {
	reqURL := c.cfg.BaseURL + endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, c.cfg.RetryDelay*time.Duration(attempt-1)); err != nil {
				return nil, err
			}
		}

		body, status, err := c.do(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", model.ErrUnavailable, err)
			log.Warn("request failed", "attempt", attempt, "error", err)
			continue
		}

		if status == http.StatusServiceUnavailable {
			lastErr = fmt.Errorf("%w: %s", model.ErrUnavailable, endpoint)
			log.Warn("server unavailable", "attempt", attempt, "endpoint", endpoint)
			continue
		}

		var resp apiResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			lastErr = fmt.Errorf("%w: %v", model.ErrBadResponse, err)
			log.Warn("can't decode response", "attempt", attempt, "error", err, "body", string(body))
			continue
		}

		return &resp, nil
	}

	return nil, lastErr
}

func (c *Client) do(ctx context.Context, reqURL string) ([]byte, int, error) {
	// Лимитер общий на все запросы клиента, ждём свободный токен
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}

func apiError(message string) error {
	if message == "" {
		return fmt.Errorf("%w: response without result", model.ErrAPI)
	}
	return fmt.Errorf("%w: %s", model.ErrAPI, message)
}

func sleep(ctx context.Context, d time.Duration) error {
	tm := time.NewTimer(d)
	defer tm.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tm.C:
		return nil
	}
}
