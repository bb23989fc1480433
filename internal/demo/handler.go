package demo

import (
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"
)

type Handler struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewHandler(db *gorm.DB, log *slog.Logger) *Handler {
	return &Handler{DB: db, Log: log}
}

// POST /demo
// Carrega os dados de demonstração; no-op se o banco já tiver clientes.
func (h *Handler) Carregar(w http.ResponseWriter, r *http.Request) {
	if err := Executar(h.DB, h.Log, time.Now()); err != nil {
		http.Error(w, "Erro ao carregar dados de demonstração", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Dados de demonstração carregados"}`))
}
