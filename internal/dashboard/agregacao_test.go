package dashboard

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/PeegFlow/api-erp/internal/cliente"
	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/PeegFlow/api-erp/internal/tarefa"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func lancamento(tipo financeiro.Tipo, categoria string, valor float64, vencimento time.Time) financeiro.Lancamento {
	return financeiro.Lancamento{
		Tipo:           tipo,
		Categoria:      categoria,
		Valor:          valor,
		DataVencimento: vencimento,
		Status:         financeiro.StatusAberto,
	}
}

func TestFluxoCaixaMensal_BaldesPorMes(t *testing.T) {
	// Três receitas: 1000 e 2000 em janeiro, 500 em fevereiro
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoReceita, "Mensalidade 1/3", 1000, data(2024, time.January, 10)),
		lancamento(financeiro.TipoReceita, "Mensalidade 2/3", 2000, data(2024, time.January, 25)),
		lancamento(financeiro.TipoReceita, "Mensalidade 3/3", 500, data(2024, time.February, 10)),
	}

	fluxo := FluxoCaixaMensal(lancamentos, data(2024, time.January, 1), data(2024, time.December, 31))

	jan := MesTipo{Mes: data(2024, time.January, 1), Tipo: financeiro.TipoReceita}
	fev := MesTipo{Mes: data(2024, time.February, 1), Tipo: financeiro.TipoReceita}

	if len(fluxo) != 2 {
		t.Fatalf("baldes = %d; esperado 2", len(fluxo))
	}
	if fluxo[jan] != 3000 {
		t.Errorf("janeiro = %f; esperado 3000", fluxo[jan])
	}
	if fluxo[fev] != 500 {
		t.Errorf("fevereiro = %f; esperado 500", fluxo[fev])
	}
}

func TestFluxoCaixaMensal_SeparaPorTipo(t *testing.T) {
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoReceita, "Mensalidade 1/1", 1000, data(2024, time.January, 10)),
		lancamento(financeiro.TipoDespesa, "Aluguel", 400, data(2024, time.January, 10)),
	}

	fluxo := FluxoCaixaMensal(lancamentos, data(2024, time.January, 1), data(2024, time.January, 31))

	receita := MesTipo{Mes: data(2024, time.January, 1), Tipo: financeiro.TipoReceita}
	despesa := MesTipo{Mes: data(2024, time.January, 1), Tipo: financeiro.TipoDespesa}
	if fluxo[receita] != 1000 || fluxo[despesa] != 400 {
		t.Errorf("fluxo = %v", fluxo)
	}
}

func TestFluxoCaixaMensal_IntervaloFechado(t *testing.T) {
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoDespesa, "Antes", 1, data(2024, time.January, 31)),
		lancamento(financeiro.TipoDespesa, "Inicio", 10, data(2024, time.February, 1)),
		lancamento(financeiro.TipoDespesa, "Fim", 100, data(2024, time.February, 29)),
		lancamento(financeiro.TipoDespesa, "Depois", 1000, data(2024, time.March, 1)),
	}

	fluxo := FluxoCaixaMensal(lancamentos, data(2024, time.February, 1), data(2024, time.February, 29))

	fev := MesTipo{Mes: data(2024, time.February, 1), Tipo: financeiro.TipoDespesa}
	if len(fluxo) != 1 || fluxo[fev] != 110 {
		t.Errorf("fluxo = %v; esperado apenas fevereiro com 110", fluxo)
	}
}

func TestFluxoCaixaMensal_IndependeDaOrdem(t *testing.T) {
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoReceita, "A", 1000, data(2024, time.January, 10)),
		lancamento(financeiro.TipoReceita, "B", 2000, data(2024, time.January, 25)),
		lancamento(financeiro.TipoDespesa, "C", 500, data(2024, time.February, 10)),
		lancamento(financeiro.TipoDespesa, "D", 750, data(2024, time.March, 3)),
		lancamento(financeiro.TipoReceita, "E", 125, data(2024, time.March, 28)),
	}
	de, ate := data(2024, time.January, 1), data(2024, time.December, 31)
	esperado := FluxoCaixaMensal(lancamentos, de, ate)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		embaralhado := make([]financeiro.Lancamento, len(lancamentos))
		copy(embaralhado, lancamentos)
		rng.Shuffle(len(embaralhado), func(a, b int) {
			embaralhado[a], embaralhado[b] = embaralhado[b], embaralhado[a]
		})
		if got := FluxoCaixaMensal(embaralhado, de, ate); !reflect.DeepEqual(got, esperado) {
			t.Fatalf("resultado dependeu da ordem: %v != %v", got, esperado)
		}
	}
}

func TestSharePorCategoria(t *testing.T) {
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoDespesa, "Aluguel", 5000, data(2024, time.January, 10)),
		lancamento(financeiro.TipoDespesa, "Aluguel", 5000, data(2024, time.February, 10)),
		lancamento(financeiro.TipoDespesa, "Impostos", 8000, data(2024, time.January, 10)),
		lancamento(financeiro.TipoReceita, "Mensalidade 1/6", 10000, data(2024, time.January, 15)),
	}

	share := SharePorCategoria(lancamentos, financeiro.TipoDespesa)
	if len(share) != 2 {
		t.Fatalf("categorias = %d; esperado 2 (receitas fora)", len(share))
	}
	if share["Aluguel"] != 10000 {
		t.Errorf("Aluguel = %f; esperado 10000", share["Aluguel"])
	}
	if share["Impostos"] != 8000 {
		t.Errorf("Impostos = %f; esperado 8000", share["Impostos"])
	}
}

func TestConcluidasPorResponsavel(t *testing.T) {
	tarefas := []tarefa.Tarefa{
		{Responsavel: "Ana Silva", Status: tarefa.StatusConcluida},
		{Responsavel: "Ana Silva", Status: tarefa.StatusConcluida},
		{Responsavel: "Ana Silva", Status: tarefa.StatusPendente},
		{Responsavel: "Bruno Souza", Status: tarefa.StatusConcluida},
		{Responsavel: "Roberto TI", Status: tarefa.StatusEmAndamento},
	}

	ranking := ConcluidasPorResponsavel(tarefas)
	if len(ranking) != 2 {
		t.Fatalf("ranking = %v; esperado 2 responsáveis", ranking)
	}
	if ranking["Ana Silva"] != 2 || ranking["Bruno Souza"] != 1 {
		t.Errorf("ranking = %v", ranking)
	}
}

func TestClientesPorSetor(t *testing.T) {
	clientes := []cliente.Cliente{
		{Nome: "Inova Corp", Setor: "Tecnologia"},
		{Nome: "Tech Brasil", Setor: "Tecnologia"},
		{Nome: "Agro Ltda", Setor: "Agronegócio"},
	}

	carteira := ClientesPorSetor(clientes)
	if carteira["Tecnologia"] != 2 || carteira["Agronegócio"] != 1 {
		t.Errorf("carteira = %v", carteira)
	}
}

func TestSaldoGeral(t *testing.T) {
	lancamentos := []financeiro.Lancamento{
		lancamento(financeiro.TipoReceita, "Mensalidade 1/2", 10000, data(2024, time.January, 15)),
		lancamento(financeiro.TipoReceita, "Mensalidade 2/2", 10000, data(2024, time.February, 15)),
		lancamento(financeiro.TipoDespesa, "Salários", 12000, data(2024, time.January, 10)),
	}

	receita, despesa, saldo := SaldoGeral(lancamentos)
	if receita != 20000 || despesa != 12000 || saldo != 8000 {
		t.Errorf("receita=%f despesa=%f saldo=%f", receita, despesa, saldo)
	}
}
