package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo       *Repository
	Financeiro *financeiro.Repository
}

func NewHandler(repo *Repository, fin *financeiro.Repository) *Handler {
	return &Handler{Repo: repo, Financeiro: fin}
}

// DTO usado no POST /contratos.
type ContratoCreateDTO struct {
	ClienteID   uint    `json:"clienteId"`
	Tipo        string  `json:"tipo"`
	ValorTotal  float64 `json:"valorTotal"`
	QtdParcelas int     `json:"qtdParcelas"`
	Inicio      string  `json:"inicio"` // YYYY-MM-DD
}

const formatoData = "2006-01-02"

// POST /contratos
// Firma o contrato e lança as parcelas de Receita automaticamente.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ContratoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.ValorTotal <= 0 || in.QtdParcelas < 1 {
		http.Error(w, "valor total e quantidade de parcelas devem ser positivos", http.StatusBadRequest)
		return
	}
	inicio, err := time.Parse(formatoData, in.Inicio)
	if err != nil {
		http.Error(w, "data de início inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	fim := CalcularFim(inicio, in.QtdParcelas)
	c := &Contrato{
		ClienteID:   in.ClienteID,
		Tipo:        in.Tipo,
		ValorTotal:  in.ValorTotal,
		QtdParcelas: in.QtdParcelas,
		Inicio:      inicio,
		Fim:         fim,
		Status:      StatusVigencia(fim, time.Now()),
	}

	if err := h.Repo.CriarComParcelas(c); err != nil {
		if errors.Is(err, ErrClienteInexistente) {
			http.Error(w, "cliente referenciado não existe", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, financeiro.ErrParcelamentoInvalido) {
			http.Error(w, "parâmetros de parcelamento inválidos", http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao firmar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	if err := h.Repo.SincronizarVigencia(hoje); err != nil {
		http.Error(w, "Erro ao sincronizar vigência", http.StatusInternalServerError)
		return
	}

	var (
		contratos []Contrato
		err       error
	)
	if r.URL.Query().Get("status") == string(StatusAtivo) {
		contratos, err = h.Repo.ListarAtivos(hoje)
	} else {
		contratos, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contratos)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	hoje := time.Now()
	c.Status = StatusVigencia(c.Fim, hoje)
	for i := range c.Lancamentos {
		c.Lancamentos[i].Status = financeiro.StatusEfetivo(c.Lancamentos[i], hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos/{id}/lancamentos
func (h *Handler) ListarLancamentos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	lancamentos, err := h.Financeiro.ListByContrato(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos do contrato", http.StatusInternalServerError)
		return
	}
	hoje := time.Now()
	for i := range lancamentos {
		lancamentos[i].Status = financeiro.StatusEfetivo(lancamentos[i], hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lancamentos)
}

// PUT /contratos/{id}
// Permite corrigir o tipo; valor, parcelas e início são imutáveis
// depois que o financeiro foi gerado.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	var payload struct {
		Tipo string `json:"tipo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Tipo != "" {
		existente.Tipo = payload.Tipo
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}
