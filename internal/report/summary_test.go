package report

import (
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"uploadman/internal/model"
)

func TestResultLine(t *testing.T) {
	line := ResultLine(model.UploadResult{
		URL:     "http://x/1",
		Status:  model.OutcomeSuccess,
		Message: "upload submitted",
	})
	be.True(t, strings.Contains(line, "http://x/1"))
	be.True(t, strings.Contains(line, "upload submitted"))
}

func TestSummary(t *testing.T) {
	started := time.Now()
	stats := model.RunStats{
		TotalFolders: 2,
		Successful:   5,
		Failed:       1,
		Skipped:      3,
		StartedAt:    started,
		EndedAt:      started.Add(10 * time.Second),
	}

	out := Summary(stats)
	for _, want := range []string{"Folders created", "Successful", "Failed", "Skipped", "10.00s", "0.50 uploads/s"} {
		be.True(t, strings.Contains(out, want))
	}
}
