package financeiro

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

// DTO usado no POST /financeiro (lançamento avulso, ex.: conta de luz).
type LancamentoCreateDTO struct {
	ContratoID     *uint   `json:"contratoId"`
	Tipo           Tipo    `json:"tipo"`
	Categoria      string  `json:"categoria"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"` // YYYY-MM-DD
}

// DTO usado no PUT /financeiro/{id}.
type LancamentoUpdateDTO struct {
	Categoria      string  `json:"categoria"`
	Valor          float64 `json:"valor"`
	DataVencimento string  `json:"dataVencimento"`
	Status         Status  `json:"status"`
}

const formatoData = "2006-01-02"

// GET /financeiro?mes=&ano=&tipo=
// Sem mês/ano informados, usa o mês corrente. O status devolvido já é o
// efetivo: Aberto vencido aparece como Atrasado.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	mes := hoje.Month()
	ano := hoje.Year()

	if v := r.URL.Query().Get("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "mês inválido", http.StatusBadRequest)
			return
		}
		mes = time.Month(n)
	}
	if v := r.URL.Query().Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return
		}
		ano = n
	}

	tipo := Tipo(r.URL.Query().Get("tipo"))
	if tipo != "" && !tipo.Valido() {
		http.Error(w, "tipo inválido. Use 'Receita' ou 'Despesa'.", http.StatusBadRequest)
		return
	}

	lancamentos, err := h.Repo.ListPorMesAno(mes, ano, tipo)
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos", http.StatusInternalServerError)
		return
	}
	for i := range lancamentos {
		lancamentos[i].Status = StatusEfetivo(lancamentos[i], hoje)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lancamentos)
}

// GET /financeiro/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lançamento inválido", http.StatusBadRequest)
		return
	}

	l, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Lançamento não encontrado", http.StatusNotFound)
		return
	}
	l.Status = StatusEfetivo(*l, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// POST /financeiro
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in LancamentoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !in.Tipo.Valido() {
		http.Error(w, "tipo inválido. Use 'Receita' ou 'Despesa'.", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 {
		http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
		return
	}
	if in.Categoria == "" {
		http.Error(w, "categoria é obrigatória", http.StatusBadRequest)
		return
	}
	vencimento, err := time.Parse(formatoData, in.DataVencimento)
	if err != nil {
		http.Error(w, "data de vencimento inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	l := &Lancamento{
		ContratoID:     in.ContratoID,
		Tipo:           in.Tipo,
		Categoria:      in.Categoria,
		Valor:          in.Valor,
		DataVencimento: vencimento,
		Status:         StatusAberto,
	}
	if err := h.Repo.Create(l); err != nil {
		if errors.Is(err, ErrContratoInexistente) {
			http.Error(w, "contrato referenciado não existe", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao criar lançamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// PUT /financeiro/{id}
// Corrige valor, categoria e vencimento; mudança de status passa pela
// mesma tabela de transições do PATCH.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lançamento inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Lançamento não encontrado", http.StatusNotFound)
		return
	}

	var in LancamentoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 {
		http.Error(w, "valor deve ser positivo", http.StatusBadRequest)
		return
	}
	if !in.Status.Valido() {
		http.Error(w, "status inválido. Use 'Aberto', 'Pago' ou 'Atrasado'.", http.StatusBadRequest)
		return
	}
	if !TransicaoPermitida(existente.Status, in.Status) {
		http.Error(w, "transição de status não permitida", http.StatusBadRequest)
		return
	}
	vencimento, err := time.Parse(formatoData, in.DataVencimento)
	if err != nil {
		http.Error(w, "data de vencimento inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	existente.Categoria = in.Categoria
	existente.Valor = in.Valor
	existente.DataVencimento = vencimento
	existente.Status = in.Status
	if in.Status == StatusPago && existente.DataPagamento == nil {
		agora := time.Now()
		existente.DataPagamento = &agora
	}
	if in.Status != StatusPago {
		existente.DataPagamento = nil
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar lançamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// PATCH /financeiro/{id}/status
// Aberto -> Pago, Aberto -> Atrasado e Atrasado -> Pago; Pago é terminal.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do lançamento inválido", http.StatusBadRequest)
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
		http.Error(w, "status inválido. Use 'Aberto', 'Pago' ou 'Atrasado'.", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Lançamento não encontrado", http.StatusNotFound)
		return
	}
	if !TransicaoPermitida(atual.Status, payload.Status) {
		http.Error(w, "transição de status não permitida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(uint(id), payload.Status, time.Now()); err != nil {
		http.Error(w, "Erro ao atualizar status do lançamento", http.StatusInternalServerError)
		return
	}

	l, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar lançamento atualizado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// GET /financeiro/resumo?mes=&ano=
// Entradas, saídas e resultado do mês.
func (h *Handler) ResumoMensal(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	mes := hoje.Month()
	ano := hoje.Year()

	if v := r.URL.Query().Get("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "mês inválido", http.StatusBadRequest)
			return
		}
		mes = time.Month(n)
	}
	if v := r.URL.Query().Get("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "ano inválido", http.StatusBadRequest)
			return
		}
		ano = n
	}

	entradas, err := h.Repo.SomaPorTipo(mes, ano, TipoReceita)
	if err != nil {
		http.Error(w, "Erro ao somar entradas", http.StatusInternalServerError)
		return
	}
	saidas, err := h.Repo.SomaPorTipo(mes, ano, TipoDespesa)
	if err != nil {
		http.Error(w, "Erro ao somar saídas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]float64{
		"entradas":  entradas,
		"saidas":    saidas,
		"resultado": entradas - saidas,
	})
}
