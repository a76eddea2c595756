package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"uploadman/internal/config"
	"uploadman/internal/earnvids"
	"uploadman/internal/logger"
	"uploadman/internal/manager"
	"uploadman/internal/model"
	"uploadman/internal/probe"
	"uploadman/internal/report"
	"uploadman/internal/uploadlist"

	"github.com/joho/godotenv"
)

var (
	listFile    = flag.String("f", "upload_list.txt", "Upload list file.")
	resultsFile = flag.String("o", "", "Results file, overrides RESULTS_FILE env.")
	yes         = flag.Bool("y", false, "Start without confirmation.")
)

func main() {
	flag.Parse()
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if *resultsFile != "" {
		cfg.Report.ResultsFile = *resultsFile
	}

	logger.SetupDefault(cfg.Logger)

	groups, err := uploadlist.ParseFile(*listFile)
	if err != nil {
		log.Fatalf("read upload list failed: %v", err)
	}
	if len(groups) == 0 {
		log.Fatalln(model.ErrNoGroups)
	}

	total := model.TotalURLs(groups)
	fmt.Printf("Files found: %d (folders: %d)\n", total, len(groups))
	if total > cfg.Uploader.MaxTotal {
		fmt.Printf("Note: at most %d uploads will be processed\n", cfg.Uploader.MaxTotal)
	}

	if !*yes && !confirm("Start uploads? [y/N] ") {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// логгер запуска: все операции внутри Run пишут логи с атрибутом list
	ctx = logger.Context(ctx, slog.Default().With("list", *listFile))

	httpClient := newHTTPClient()
	client := earnvids.New(cfg.API, httpClient, probe.New(httpClient))

	mgr := manager.New(cfg.Uploader, client)
	mgr.SetResultCallback(func(res model.UploadResult) {
		fmt.Println(report.ResultLine(res))
	})

	results, stats, err := mgr.Run(ctx, groups)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(report.Summary(stats))

	if err := report.Save(cfg.Report.ResultsFile, results); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Results saved to %q\n", cfg.Report.ResultsFile)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// newHTTPClient создаёт клиент с таймаутами под долгие ответы API
// (сервер может держать запрос, пока регистрирует загрузку).
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   60 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 60 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}
