package httpserver

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexHTML []byte

// GET /
func handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
