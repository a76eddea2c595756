package model

import "time"

// RunStats — агрегированные счётчики одного запуска.
// Принадлежат менеджеру, обновляются под его мьютексом.
type RunStats struct {
	TotalFolders int       `json:"total_folders"`
	Successful   int       `json:"successful"`
	Failed       int       `json:"failed"`
	Skipped      int       `json:"skipped"`
	StartedAt    time.Time `json:"started_at,omitzero"`
	EndedAt      time.Time `json:"ended_at,omitzero"`
}

func (s RunStats) Duration() time.Duration {
	if s.EndedAt.IsZero() || s.StartedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// PerSecond возвращает скорость успешных загрузок (uploads/s).
func (s RunStats) PerSecond() float64 {
	d := s.Duration().Seconds()
	if d <= 0 {
		return 0
	}
	return float64(s.Successful) / d
}
