package model

// OutcomeStatus — терминальное состояние одной загрузки.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// UploadResult — итог обработки одного URL. Неизменяем после создания.
// Формат json совпадает с форматом файла результатов.
type UploadResult struct {
	URL     string        `json:"url"`
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Folder  string        `json:"folder,omitempty"`
	Status  OutcomeStatus `json:"-"`
}
