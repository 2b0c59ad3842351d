package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

// Static раздает файлы фронтенда для всех GET-путей вне /api.
// Используется как NotFound-обработчик роутера.
type Static struct {
	dir string
}

func NewStatic(dir string) *Static {
	return &Static{dir: dir}
}

func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api") {
		respond.Error(w, r, http.StatusNotFound, "Route not found")
		return
	}

	name := r.URL.Path
	if name == "/" {
		name = "/index.html"
	}

	// filepath.Clean не дает выйти за пределы публичного каталога
	file := filepath.Join(s.dir, filepath.Clean("/"+name))

	content, err := os.ReadFile(file)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not found"))
		return
	}

	mime, ok := contentTypes[filepath.Ext(file)]
	if !ok {
		mime = "text/plain"
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
