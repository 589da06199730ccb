package httpapi

import (
	"net/http"
	"path"
	"strings"
)

// ServeStatic serves files from the static directory for non-API paths.
// Hidden files and database files are never served.
func (s *Server) ServeStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}
	if !servable(name) {
		fileNotFound(w)
		return
	}
	file, err := http.Dir(s.Config.StaticDir).Open(name)
	if err != nil {
		fileNotFound(w)
		return
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil || info.IsDir() {
		fileNotFound(w)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

func servable(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return false
		}
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".db", ".sqlite", ".sqlite3", ".log":
		return false
	}
	return true
}

func fileNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("File not found"))
}
