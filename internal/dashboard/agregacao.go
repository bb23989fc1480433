package dashboard

import (
	"time"

	"github.com/PeegFlow/api-erp/internal/cliente"
	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/PeegFlow/api-erp/internal/tarefa"
)

// MesTipo identifica um balde da agregação mensal: primeiro dia do mês de
// vencimento + tipo do lançamento.
type MesTipo struct {
	Mes  time.Time
	Tipo financeiro.Tipo
}

// InicioDoMes normaliza uma data para o primeiro dia do seu mês.
func InicioDoMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// FluxoCaixaMensal soma os lançamentos por (mês de vencimento, tipo) dentro
// do intervalo fechado [de, ate]. Pares ausentes não aparecem no resultado
// (sem preenchimento com zero). A acumulação é por mapa, então o resultado
// independe da ordem dos lançamentos de entrada.
func FluxoCaixaMensal(lancamentos []financeiro.Lancamento, de, ate time.Time) map[MesTipo]float64 {
	fluxo := make(map[MesTipo]float64)
	for _, l := range lancamentos {
		if l.DataVencimento.Before(de) || l.DataVencimento.After(ate) {
			continue
		}
		chave := MesTipo{Mes: InicioDoMes(l.DataVencimento), Tipo: l.Tipo}
		fluxo[chave] += l.Valor
	}
	return fluxo
}

// SharePorCategoria soma os lançamentos de um tipo por categoria; usado no
// gráfico de share de despesas.
func SharePorCategoria(lancamentos []financeiro.Lancamento, tipo financeiro.Tipo) map[string]float64 {
	share := make(map[string]float64)
	for _, l := range lancamentos {
		if l.Tipo != tipo {
			continue
		}
		share[l.Categoria] += l.Valor
	}
	return share
}

// ConcluidasPorResponsavel conta as tarefas concluídas por responsável.
func ConcluidasPorResponsavel(tarefas []tarefa.Tarefa) map[string]int {
	ranking := make(map[string]int)
	for _, t := range tarefas {
		if t.Status != tarefa.StatusConcluida {
			continue
		}
		ranking[t.Responsavel]++
	}
	return ranking
}

// ClientesPorSetor conta os clientes da carteira por setor.
func ClientesPorSetor(clientes []cliente.Cliente) map[string]int {
	carteira := make(map[string]int)
	for _, c := range clientes {
		carteira[c.Setor]++
	}
	return carteira
}

// SaldoGeral acumula receita, despesa e saldo sobre todos os lançamentos.
func SaldoGeral(lancamentos []financeiro.Lancamento) (receita, despesa, saldo float64) {
	for _, l := range lancamentos {
		switch l.Tipo {
		case financeiro.TipoReceita:
			receita += l.Valor
		case financeiro.TipoDespesa:
			despesa += l.Valor
		}
	}
	return receita, despesa, receita - despesa
}
