// Package frontend serves the single page app bundle. Unmatched routes fall
// back to the entry document so client side routing keeps working.
package frontend

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const entryDocument = "index.html"

// Handler serves files under dir with SPA fallback semantics:
// an exact file match is served as-is, everything else resolves to the
// entry document, and a missing directory or entry document is a 404.
func Handler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			http.Error(w, "Frontend directory not found", http.StatusNotFound)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" || path == entryDocument {
			serveEntry(w, r, dir, entryDocument+" not found")
			return
		}

		// Clean against the root first so traversal can't escape dir
		target := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
			serveFile(w, r, target)
			return
		}

		serveEntry(w, r, dir, "File not found")
	})
}

func serveEntry(w http.ResponseWriter, r *http.Request, dir, notFoundMessage string) {
	entry := filepath.Join(dir, entryDocument)
	if info, err := os.Stat(entry); err != nil || !info.Mode().IsRegular() {
		http.Error(w, notFoundMessage, http.StatusNotFound)
		return
	}
	serveFile(w, r, entry)
}

// serveFile avoids http.ServeFile so requests for index.html itself aren't
// redirected to ./
func serveFile(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
