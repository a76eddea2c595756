// Package report сохраняет итоги запуска и рисует сводку в консоли.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"uploadman/internal/model"
)

// Save пишет результаты в json-файл. Существующий файл перезаписывается.
func Save(fileName string, results []model.UploadResult) error {
	buf, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results failed: %w", err)
	}
	if err := os.WriteFile(fileName, buf, 0666); err != nil {
		return fmt.Errorf("write results failed: %w", err)
	}
	return nil
}

func Load(fileName string) ([]model.UploadResult, error) {
	buf, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	var results []model.UploadResult
	if err := json.Unmarshal(buf, &results); err != nil {
		return nil, fmt.Errorf("parse results failed: %w", err)
	}
	return results, nil
}
