package config

import (
	"fmt"
	"log/slog"
	"time"
)

type Logger struct {
	Level     slog.Level
	Plaintext bool
}

type API struct {
	Key        string        // ключ доступа к API (обязательный)
	BaseURL    string        // базовый адрес API
	Retries    int           // количество попыток на один запрос
	RetryDelay time.Duration // базовая пауза между попытками (растёт линейно)
	RateEvery  time.Duration // интервал пополнения rate limiter-а
	RateBurst  int           // размер burst-а rate limiter-а
}

type Uploader struct {
	MaxTotal  int // глобальный лимит загрузок за запуск
	MaxActive int // максимальное количество одновременных отправок
}

type Report struct {
	ResultsFile string // куда сохранять итоговый json
}

type Config struct {
	Logger   Logger
	API      API
	Uploader Uploader
	Report   Report
}

func Load() (Config, error) {
	var ge getenv
	cfg := Config{
		Logger: Logger{
			Level:     ge.LogLevel("LOG_LEVEL", false, slog.LevelInfo),
			Plaintext: ge.Bool("LOG_PLAINTEXT", false, false),
		},
		API: API{
			Key:        ge.String("API_KEY", true, ""),
			BaseURL:    ge.String("API_BASE_URL", false, "https://earnvidsapi.com/api"),
			Retries:    ge.Int("API_RETRIES", false, 3),
			RetryDelay: ge.Duration("API_RETRY_DELAY", false, 2*time.Second),
			RateEvery:  ge.Duration("API_RATE_EVERY", false, 250*time.Millisecond),
			RateBurst:  ge.Int("API_RATE_BURST", false, 5),
		},
		Uploader: Uploader{
			MaxTotal:  ge.Int("UPLOAD_MAX_TOTAL", false, 480),
			MaxActive: ge.Int("UPLOAD_MAX_ACTIVE", false, 5),
		},
		Report: Report{
			ResultsFile: ge.String("RESULTS_FILE", false, "upload_results.json"),
		},
	}

	// Нулевые лимиты ломают клиент и менеджер, ловим их на старте
	if cfg.API.Retries < 1 {
		ge.errs = append(ge.errs, fmt.Errorf("API_RETRIES must be >= 1, got %d", cfg.API.Retries))
	}
	if cfg.Uploader.MaxActive < 1 {
		ge.errs = append(ge.errs, fmt.Errorf("UPLOAD_MAX_ACTIVE must be >= 1, got %d", cfg.Uploader.MaxActive))
	}

	return cfg, ge.Err()
}
