package manager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"uploadman/internal/config"
	"uploadman/internal/earnvids"
	"uploadman/internal/model"
	"uploadman/internal/probe"
)

// Сквозной сценарий: настоящий клиент API + probe против httptest-серверов.
func TestRun_EndToEnd(t *testing.T) {
	// сервер с "файлами" для probe
	fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer fileSrv.Close()

	// фейковый API: папка "down" всегда получает 503
	var (
		mu            sync.Mutex
		downAttempts  int
		submittedURLs []string
	)
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/folder/create":
			if r.URL.Query().Get("name") == "down" {
				mu.Lock()
				downAttempts++
				mu.Unlock()
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"result": {"fld_id": 101}}`))
		case "/upload/url":
			mu.Lock()
			submittedURLs = append(submittedURLs, r.URL.Query().Get("url"))
			mu.Unlock()
			w.Write([]byte(`{"result": {"filecode": "ok"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer apiSrv.Close()

	cfg := config.API{
		Key:        "test-key",
		BaseURL:    apiSrv.URL,
		Retries:    3,
		RetryDelay: 5 * time.Millisecond,
		RateEvery:  time.Millisecond,
		RateBurst:  100,
	}
	client := earnvids.New(cfg, apiSrv.Client(), probe.New(fileSrv.Client()))
	m := New(config.Uploader{MaxTotal: 480, MaxActive: 5}, client)

	gs := []model.UploadGroup{
		{FolderName: "ok", URLs: []string{
			fileSrv.URL + "/ok1.mp4",
			fileSrv.URL + "/missing.mp4",
			fileSrv.URL + "/ok2.mp4",
		}},
		{FolderName: "down", URLs: []string{fileSrv.URL + "/ok3.mp4"}},
	}

	results, stats, err := m.Run(context.Background(), gs)
	be.Err(t, err, nil)

	be.Equal(t, stats.TotalFolders, 1)
	be.Equal(t, stats.Successful, 2)
	be.Equal(t, stats.Failed, 1)
	be.Equal(t, stats.Skipped, 0)
	// результаты только для группы с созданной папкой
	be.Equal(t, len(results), 3)

	mu.Lock()
	defer mu.Unlock()
	// три попытки создать папку "down", ни одной загрузки для её группы
	be.Equal(t, downAttempts, 3)
	be.Equal(t, len(submittedURLs), 2)
	for _, u := range submittedURLs {
		be.True(t, !strings.Contains(u, "missing"))
	}
}
