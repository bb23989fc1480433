package cliente

import (
	"encoding/json"
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

// DTO usado no POST /clientes e PUT /clientes/{id}.
type ClienteDTO struct {
	Nome     string `json:"nome"`
	CpfCnpj  string `json:"cpfCnpj"`
	Setor    string `json:"setor"`
	Porte    string `json:"porte"`
	Filiais  int    `json:"filiais"`
	Endereco string `json:"endereco"`
	Email    string `json:"email"`
}

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Filiais < 1 {
		in.Filiais = 1
	}

	c := &Cliente{
		Nome:         in.Nome,
		CpfCnpj:      in.CpfCnpj,
		Setor:        in.Setor,
		Porte:        in.Porte,
		Filiais:      in.Filiais,
		Endereco:     in.Endereco,
		Email:        in.Email,
		DataCadastro: time.Now(),
	}
	if err := h.Repo.Create(c); err != nil {
		http.Error(w, "Erro ao cadastrar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cliente inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do cliente inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	var in ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = in.Nome
	existente.CpfCnpj = in.CpfCnpj
	existente.Setor = in.Setor
	existente.Porte = in.Porte
	existente.Filiais = in.Filiais
	existente.Endereco = in.Endereco
	existente.Email = in.Email

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}
