package projeto

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PeegFlow/api-erp/internal/tarefa"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /projetos. TarefasIniciais é a lista separada por
// vírgula vinda do formulário de criação.
type ProjetoCreateDTO struct {
	ContratoID      uint   `json:"contratoId"`
	Nome            string `json:"nome"`
	Inicio          string `json:"inicio"` // YYYY-MM-DD
	Fim             string `json:"fim"`
	Responsavel     string `json:"responsavel"`
	TarefasIniciais string `json:"tarefasIniciais"`
}

// DTO usado no PUT /projetos/{id}.
type ProjetoUpdateDTO struct {
	Nome        string `json:"nome"`
	Fim         string `json:"fim"`
	Responsavel string `json:"responsavel"`
	Status      Status `json:"status"`
}

const formatoData = "2006-01-02"

// POST /projetos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ProjetoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	inicio, err := time.Parse(formatoData, in.Inicio)
	if err != nil {
		http.Error(w, "data de início inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := time.Parse(formatoData, in.Fim)
	if err != nil {
		http.Error(w, "data de entrega inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	p := &Projeto{
		ContratoID:  in.ContratoID,
		Nome:        in.Nome,
		Inicio:      inicio,
		Fim:         fim,
		Status:      StatusEmAndamento,
		Responsavel: in.Responsavel,
	}

	var iniciais []*tarefa.Tarefa
	for _, desc := range strings.Split(in.TarefasIniciais, ",") {
		desc = strings.TrimSpace(desc)
		if desc == "" {
			continue
		}
		iniciais = append(iniciais, &tarefa.Tarefa{
			Descricao:   desc,
			Tipo:        "Inicial",
			DataLimite:  inicio,
			Responsavel: in.Responsavel,
			Status:      tarefa.StatusPendente,
		})
	}

	if err := h.Repo.CriarComTarefas(p, iniciais); err != nil {
		if errors.Is(err, ErrContratoInexistente) {
			http.Error(w, "contrato referenciado não existe", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao criar projeto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /projetos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	projetos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar projetos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projetos)
}

// GET /projetos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do projeto inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Projeto não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /projetos/{id}
// Status é manual; concluir todas as tarefas não conclui o projeto.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do projeto inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Projeto não encontrado", http.StatusNotFound)
		return
	}

	var in ProjetoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !in.Status.Valido() {
		http.Error(w, "status inválido. Use 'Em Andamento' ou 'Concluído'.", http.StatusBadRequest)
		return
	}
	fim, err := time.Parse(formatoData, in.Fim)
	if err != nil {
		http.Error(w, "data de entrega inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	existente.Nome = in.Nome
	existente.Fim = fim
	existente.Responsavel = in.Responsavel
	existente.Status = in.Status

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar projeto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}
