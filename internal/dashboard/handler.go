package dashboard

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/PeegFlow/api-erp/internal/cliente"
	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/PeegFlow/api-erp/internal/projeto"
	"github.com/PeegFlow/api-erp/internal/tarefa"
)

// Handler expõe as visões agregadas somente-leitura do dashboard.
type Handler struct {
	Financeiro *financeiro.Repository
	Tarefas    *tarefa.Repository
	Clientes   *cliente.Repository
	Projetos   *projeto.Repository
}

func NewHandler(fin *financeiro.Repository, tar *tarefa.Repository, cli *cliente.Repository, proj *projeto.Repository) *Handler {
	return &Handler{Financeiro: fin, Tarefas: tar, Clientes: cli, Projetos: proj}
}

const formatoData = "2006-01-02"

// Linha da série de fluxo de caixa devolvida ao front.
type FluxoMesDTO struct {
	Mes   string          `json:"mes"` // YYYY-MM
	Tipo  financeiro.Tipo `json:"tipo"`
	Valor float64         `json:"valor"`
}

type CategoriaDTO struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}

type RankingDTO struct {
	Responsavel string `json:"responsavel"`
	Entregas    int    `json:"entregas"`
}

type SetorDTO struct {
	Setor    string `json:"setor"`
	Clientes int    `json:"clientes"`
}

// GET /dashboard/fluxo-caixa?de=&ate=
// Padrão: últimos 90 dias até 30 dias à frente.
func (h *Handler) FluxoCaixa(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	de := hoje.AddDate(0, 0, -90)
	ate := hoje.AddDate(0, 0, 30)

	if v := r.URL.Query().Get("de"); v != "" {
		d, err := time.Parse(formatoData, v)
		if err != nil {
			http.Error(w, "data 'de' inválida (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		de = d
	}
	if v := r.URL.Query().Get("ate"); v != "" {
		d, err := time.Parse(formatoData, v)
		if err != nil {
			http.Error(w, "data 'ate' inválida (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		ate = d
	}

	lancamentos, err := h.Financeiro.ListPorPeriodo(de, ate)
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos", http.StatusInternalServerError)
		return
	}
	for i := range lancamentos {
		lancamentos[i].Status = financeiro.StatusEfetivo(lancamentos[i], hoje)
	}

	fluxo := FluxoCaixaMensal(lancamentos, de, ate)
	serie := make([]FluxoMesDTO, 0, len(fluxo))
	for chave, valor := range fluxo {
		serie = append(serie, FluxoMesDTO{
			Mes:   chave.Mes.Format("2006-01"),
			Tipo:  chave.Tipo,
			Valor: valor,
		})
	}
	sort.Slice(serie, func(i, j int) bool {
		if serie[i].Mes != serie[j].Mes {
			return serie[i].Mes < serie[j].Mes
		}
		return serie[i].Tipo < serie[j].Tipo
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(serie)
}

// GET /dashboard/share-despesas?de=&ate=
func (h *Handler) ShareDespesas(w http.ResponseWriter, r *http.Request) {
	hoje := time.Now()
	de := hoje.AddDate(0, 0, -90)
	ate := hoje.AddDate(0, 0, 30)

	if v := r.URL.Query().Get("de"); v != "" {
		d, err := time.Parse(formatoData, v)
		if err != nil {
			http.Error(w, "data 'de' inválida (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		de = d
	}
	if v := r.URL.Query().Get("ate"); v != "" {
		d, err := time.Parse(formatoData, v)
		if err != nil {
			http.Error(w, "data 'ate' inválida (use YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		ate = d
	}

	lancamentos, err := h.Financeiro.ListPorPeriodo(de, ate)
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos", http.StatusInternalServerError)
		return
	}

	share := SharePorCategoria(lancamentos, financeiro.TipoDespesa)
	resultado := make([]CategoriaDTO, 0, len(share))
	for categoria, valor := range share {
		resultado = append(resultado, CategoriaDTO{Categoria: categoria, Valor: valor})
	}
	sort.Slice(resultado, func(i, j int) bool {
		if resultado[i].Valor != resultado[j].Valor {
			return resultado[i].Valor > resultado[j].Valor
		}
		return resultado[i].Categoria < resultado[j].Categoria
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// GET /dashboard/eficiencia
// Ranking de tarefas concluídas por responsável.
func (h *Handler) Eficiencia(w http.ResponseWriter, r *http.Request) {
	tarefas, err := h.Tarefas.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar tarefas", http.StatusInternalServerError)
		return
	}

	ranking := ConcluidasPorResponsavel(tarefas)
	resultado := make([]RankingDTO, 0, len(ranking))
	for responsavel, entregas := range ranking {
		resultado = append(resultado, RankingDTO{Responsavel: responsavel, Entregas: entregas})
	}
	sort.Slice(resultado, func(i, j int) bool {
		if resultado[i].Entregas != resultado[j].Entregas {
			return resultado[i].Entregas > resultado[j].Entregas
		}
		return resultado[i].Responsavel < resultado[j].Responsavel
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// GET /dashboard/clientes-por-setor
func (h *Handler) CarteiraPorSetor(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Clientes.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar clientes", http.StatusInternalServerError)
		return
	}

	carteira := ClientesPorSetor(clientes)
	resultado := make([]SetorDTO, 0, len(carteira))
	for setor, n := range carteira {
		resultado = append(resultado, SetorDTO{Setor: setor, Clientes: n})
	}
	sort.Slice(resultado, func(i, j int) bool {
		if resultado[i].Clientes != resultado[j].Clientes {
			return resultado[i].Clientes > resultado[j].Clientes
		}
		return resultado[i].Setor < resultado[j].Setor
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// GET /dashboard/kpis
// Saldo geral acumulado, faturamento, despesas e projetos ativos.
func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	lancamentos, err := h.Financeiro.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao buscar lançamentos", http.StatusInternalServerError)
		return
	}
	receita, despesa, saldo := SaldoGeral(lancamentos)

	ativos, err := h.Projetos.CountPorStatus(projeto.StatusEmAndamento)
	if err != nil {
		http.Error(w, "Erro ao contar projetos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"saldoGeral":     saldo,
		"faturamento":    receita,
		"despesas":       despesa,
		"projetosAtivos": ativos,
	})
}
