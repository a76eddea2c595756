// Package manager — оркестратор пакетной загрузки: ведёт глобальную квоту,
// ограничивает число одновременных отправок и собирает итоги по каждому URL.
package manager

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"uploadman/internal/config"
	"uploadman/internal/logger"
	"uploadman/internal/model"
)

// API — минимальный интерфейс удалённого API, который нужен менеджеру.
type API interface {
	CreateFolder(ctx context.Context, name string, parentID int64) (int64, error)
	UploadURL(ctx context.Context, fileURL string, folderID int64) error
}

type Manager struct {
	cfg config.Uploader
	api API

	// обратный вызов на каждый готовый результат (прогресс в консоли);
	// вызовы сериализованы через cbMu, основной мьютекс при этом не занят
	onResult func(model.UploadResult)
	cbMu     sync.Mutex

	// семафор одновременных отправок; создание папок им не ограничено
	slots chan struct{}

	mu         sync.Mutex
	dispatched int // занятые квотные слоты
	stats      model.RunStats
	results    []model.UploadResult
}

// New создаёт менеджер на один запуск. Повторный вызов Run не поддерживается.
func New(cfg config.Uploader, api API) *Manager {
	return &Manager{
		cfg:   cfg,
		api:   api,
		slots: make(chan struct{}, cfg.MaxActive),
	}
}

// SetResultCallback устанавливает обработчик готовых результатов.
// Результаты приходят из горутин завершения, но вызовы обработчика
// не пересекаются: менеджер сериализует их сам.
func (m *Manager) SetResultCallback(fn func(model.UploadResult)) {
	m.onResult = fn
}

// Run обрабатывает все группы и возвращает результаты в порядке завершения
// (не в порядке входа) вместе с агрегированной статистикой.
func (m *Manager) Run(ctx context.Context, groups []model.UploadGroup) ([]model.UploadResult, model.RunStats, error) {
	if len(groups) == 0 {
		return nil, model.RunStats{}, model.ErrNoGroups
	}

	m.mu.Lock()
	m.stats.StartedAt = time.Now()
	m.mu.Unlock()

	var wg sync.WaitGroup
	for i := range groups {
		wg.Add(1)
		go func(g model.UploadGroup) {
			defer wg.Done()
			m.processGroup(ctx, g)
		}(groups[i])
	}
	wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.EndedAt = time.Now()
	return slices.Clone(m.results), m.stats, nil
}

func (m *Manager) processGroup(ctx context.Context, g model.UploadGroup) {
	log := logger.FromContext(ctx).With("op", "manager.processGroup", "folder", g.FolderName)

	folderID, err := m.api.CreateFolder(ctx, g.FolderName, 0)
	if err != nil {
		// Без папки группа пропускается целиком: ни заданий, ни счётчиков
		log.Error("create folder failed, group abandoned", "error", err, "urls", len(g.URLs))
		return
	}

	m.mu.Lock()
	m.stats.TotalFolders++
	m.mu.Unlock()

	var wg sync.WaitGroup
	for i, fileURL := range g.URLs {
		if !m.takeQuota() {
			log.Warn("upload limit reached, skipping rest of group",
				"limit", m.cfg.MaxTotal, "skipped", len(g.URLs)-i)
			for _, rest := range g.URLs[i:] {
				m.record(model.UploadResult{
					URL:     rest,
					Folder:  g.FolderName,
					Status:  model.OutcomeSkipped,
					Message: model.ErrQuotaExceeded.Error(),
				})
			}
			break
		}

		wg.Add(1)
		go func(fileURL string) {
			defer wg.Done()
			m.upload(ctx, fileURL, g.FolderName, folderID)
		}(fileURL)
	}
	wg.Wait()
}

func (m *Manager) upload(ctx context.Context, fileURL, folderName string, folderID int64) {
	res := model.UploadResult{URL: fileURL, Folder: folderName}

	select {
	case m.slots <- struct{}{}:
	case <-ctx.Done():
		res.Status = model.OutcomeFailed
		res.Message = "interrupted: " + ctx.Err().Error()
		m.record(res)
		return
	}
	defer func() { <-m.slots }()

	err := m.api.UploadURL(ctx, fileURL, folderID)
	switch {
	case err == nil:
		res.Status = model.OutcomeSuccess
		res.Success = true
		res.Message = "upload submitted"

	case errors.Is(err, model.ErrNotFound):
		// Недоступный файл не должен занимать квоту
		m.refundQuota()
		res.Status = model.OutcomeFailed
		res.Message = err.Error()

	default:
		res.Status = model.OutcomeFailed
		res.Message = err.Error()
	}

	m.record(res)
}

// takeQuota атомарно проверяет и занимает квотный слот.
func (m *Manager) takeQuota() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dispatched >= m.cfg.MaxTotal {
		return false
	}
	m.dispatched++
	return true
}

// refundQuota возвращает слот, занятый заданием, которое не дошло до сервера.
// Пока слот не возвращён, он считается занятым: при исчерпанной квоте
// параллельный URL в этом окне может получить skip, хотя слот вот-вот
// освободится. Окно принято — квота остаётся простой check-and-increment.
func (m *Manager) refundQuota() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatched--
}

func (m *Manager) record(res model.UploadResult) {
	m.mu.Lock()
	m.results = append(m.results, res)
	switch res.Status {
	case model.OutcomeSuccess:
		m.stats.Successful++
	case model.OutcomeFailed:
		m.stats.Failed++
	case model.OutcomeSkipped:
		m.stats.Skipped++
	}
	m.mu.Unlock()

	if m.onResult != nil {
		m.cbMu.Lock()
		m.onResult(res)
		m.cbMu.Unlock()
	}
}
