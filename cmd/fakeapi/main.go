// Фейковый сервер API для ручного тестирования uploadman.
// Поддерживает /api/folder/create и /api/upload/url, умеет отдавать
// несколько 503 перед успехом (-unavail) и отклонять часть загрузок (-fail).
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
)

var (
	addr    = flag.String("addr", ":8080", "Listen address.")
	unavail = flag.Int("unavail", 0, "Respond 503 this many times before each first success.")
	failNth = flag.Int("fail", 0, "Reject every N-th upload with an api error (0 = never).")
)

var (
	mu           sync.Mutex
	nextFolderID int64 = 1000
	unavailLeft  int
	uploads      int
)

func main() {
	flag.Parse()
	unavailLeft = *unavail

	http.HandleFunc("/api/folder/create", createFolder)
	http.HandleFunc("/api/upload/url", uploadURL)

	log.Println("fake api started on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// serviceUnavailable отдаёт 503, пока не исчерпан счётчик -unavail.
func serviceUnavailable(w http.ResponseWriter) bool {
	mu.Lock()
	defer mu.Unlock()

	if unavailLeft > 0 {
		unavailLeft--
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return true
	}
	return false
}

func createFolder(w http.ResponseWriter, r *http.Request) {
	if serviceUnavailable(w) {
		return
	}

	name := r.URL.Query().Get("name")
	if r.URL.Query().Get("key") == "" || name == "" {
		writeJSON(w, map[string]any{"message": "key and name are required"})
		return
	}

	mu.Lock()
	nextFolderID++
	id := nextFolderID
	mu.Unlock()

	log.Printf("folder created: %q (id %d)", name, id)
	writeJSON(w, map[string]any{"result": map[string]any{"fld_id": id}})
}

func uploadURL(w http.ResponseWriter, r *http.Request) {
	if serviceUnavailable(w) {
		return
	}

	q := r.URL.Query()
	if q.Get("key") == "" || q.Get("url") == "" || q.Get("fld_id") == "" {
		writeJSON(w, map[string]any{"message": "key, url and fld_id are required"})
		return
	}

	mu.Lock()
	uploads++
	n := uploads
	mu.Unlock()

	if *failNth > 0 && n%*failNth == 0 {
		log.Printf("upload rejected: %s", q.Get("url"))
		writeJSON(w, map[string]any{"message": "file is too large"})
		return
	}

	log.Printf("upload accepted: %s -> folder %s", q.Get("url"), q.Get("fld_id"))
	writeJSON(w, map[string]any{"result": map[string]any{"filecode": n}})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("write response failed:", err)
	}
}
