package report

import (
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"uploadman/internal/model"
)

func TestSaveLoad(t *testing.T) {
	results := []model.UploadResult{
		{URL: "http://x/1", Success: true, Message: "upload submitted", Folder: "A"},
		{URL: "http://x/2", Success: false, Message: "file not found: status 404", Folder: "A"},
		{URL: "http://x/3", Success: false, Message: "upload limit reached", Folder: "B"},
	}

	fileName := filepath.Join(t.TempDir(), "upload_results.json")
	be.Err(t, Save(fileName, results), nil)

	loaded, err := Load(fileName)
	be.Err(t, err, nil)
	// длина файла равна числу всех учтённых URL-ов, включая пропущенные
	be.Equal(t, len(loaded), len(results))
	for i := range results {
		be.Equal(t, loaded[i].URL, results[i].URL)
		be.Equal(t, loaded[i].Success, results[i].Success)
		be.Equal(t, loaded[i].Message, results[i].Message)
		be.Equal(t, loaded[i].Folder, results[i].Folder)
	}
}

func TestSaveOverwrites(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "upload_results.json")

	be.Err(t, Save(fileName, []model.UploadResult{{URL: "http://x/old"}}), nil)
	be.Err(t, Save(fileName, []model.UploadResult{{URL: "http://x/new"}}), nil)

	loaded, err := Load(fileName)
	be.Err(t, err, nil)
	be.Equal(t, len(loaded), 1)
	be.Equal(t, loaded[0].URL, "http://x/new")
}
