package handler

import (
	"net/http"
	"strconv"
)

type AssetsHandler struct {
	stylesheet []byte
}

// NewAssetsHandler serves generated assets. stylesheet is the chroma CSS
// for the configured code style, built once at startup.
func NewAssetsHandler(stylesheet []byte) *AssetsHandler {
	return &AssetsHandler{
		stylesheet: stylesheet,
	}
}

func (h *AssetsHandler) CodeStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.stylesheet)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(h.stylesheet)
}

// Healthz reports liveness for load balancers.
func (h *AssetsHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
