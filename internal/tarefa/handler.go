package tarefa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /projetos/{id}/tarefas.
type TarefaCreateDTO struct {
	Descricao   string `json:"descricao"`
	Tipo        string `json:"tipo"`
	DataLimite  string `json:"dataLimite"` // YYYY-MM-DD
	Responsavel string `json:"responsavel"`
}

// DTO usado no PUT /tarefas/{id}.
type TarefaUpdateDTO struct {
	Descricao   string `json:"descricao"`
	DataLimite  string `json:"dataLimite"`
	Responsavel string `json:"responsavel"`
	Status      Status `json:"status"`
}

const formatoData = "2006-01-02"

// POST /projetos/{id}/tarefas
func (h *Handler) CriarParaProjeto(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do projeto inválido", http.StatusBadRequest)
		return
	}

	var in TarefaCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Descricao == "" {
		http.Error(w, "descrição é obrigatória", http.StatusBadRequest)
		return
	}
	limite, err := time.Parse(formatoData, in.DataLimite)
	if err != nil {
		http.Error(w, "data limite inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if in.Tipo == "" {
		in.Tipo = "Extra"
	}

	t := &Tarefa{
		ProjetoID:   uint(pid),
		Descricao:   in.Descricao,
		Tipo:        in.Tipo,
		DataLimite:  limite,
		Responsavel: in.Responsavel,
		Status:      StatusPendente,
	}
	if err := h.Repo.Create(t); err != nil {
		if errors.Is(err, ErrProjetoInexistente) {
			http.Error(w, "projeto referenciado não existe", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao criar tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// GET /projetos/{id}/tarefas
func (h *Handler) ListarPorProjeto(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do projeto inválido", http.StatusBadRequest)
		return
	}

	tarefas, err := h.Repo.ListByProjeto(uint(pid))
	if err != nil {
		http.Error(w, "Erro ao buscar tarefas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tarefas)
}

// PUT /tarefas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da tarefa inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	var in TarefaUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !in.Status.Valido() {
		http.Error(w, "status inválido. Use 'Pendente', 'Em Andamento' ou 'Concluída'.", http.StatusBadRequest)
		return
	}
	limite, err := time.Parse(formatoData, in.DataLimite)
	if err != nil {
		http.Error(w, "data limite inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	existente.Descricao = in.Descricao
	existente.DataLimite = limite
	existente.Responsavel = in.Responsavel
	AplicarStatus(existente, in.Status, time.Now())

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// PATCH /tarefas/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da tarefa inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !payload.Status.Valido() {
		http.Error(w, "status inválido. Use 'Pendente', 'Em Andamento' ou 'Concluída'.", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return
	}

	AplicarStatus(existente, payload.Status, time.Now())
	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar status da tarefa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}
