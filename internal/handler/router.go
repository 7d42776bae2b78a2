package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter はルーターを生成する。
func NewRouter(h *PotdHandler) http.Handler {
	r := chi.NewRouter()

	// ミドルウェア
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	// ルート定義
	r.Route("/v1", func(r chi.Router) {
		r.Route("/potd", func(r chi.Router) {
			r.Get("/", h.GetRange)
			r.Get("/current", h.GetCurrent)
			r.Get("/{date}", h.GetByDate)
		})
		r.Get("/seed/des", h.GetSeedDES)
		r.Get("/audit", h.ListAudit)
	})

	return r
}
