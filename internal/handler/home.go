package handler

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var homePage []byte

// Home отдает HTML форму для сокращения URL
func (h *Handler) Home(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(homePage)
}
