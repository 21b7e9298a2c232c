package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// ImageHandler serves lesson images from a fixed directory
type ImageHandler struct {
	dir    string
	logger *slog.Logger
}

// NewImageHandler creates a new image handler for the given directory
func NewImageHandler(dir string, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		dir:    dir,
		logger: logger,
	}
}

// ServeImage handles GET /images/{file}
// A missing file yields a structured JSON 404 rather than a plain error page.
func (h *ImageHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")

	// The route param is a single path segment, but never trust it as a path.
	if name == "" || name != filepath.Base(name) {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	path := filepath.Join(h.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}

	http.ServeFile(w, r, path)
}

// FileServer returns a plain static mount over the same directory for direct
// links; missing files get the generic not-found here, not the JSON body.
func (h *ImageHandler) FileServer() http.Handler {
	return http.StripPrefix("/images/", http.FileServer(http.Dir(h.dir)))
}
