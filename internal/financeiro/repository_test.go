package financeiro

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite em memória: %v", err)
	}
	// tabela de contratos mínima para os checks de integridade referencial
	if err := db.Exec("CREATE TABLE contratos (id INTEGER PRIMARY KEY)").Error; err != nil {
		t.Fatalf("criar tabela contratos: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrar lançamentos: %v", err)
	}
	return db
}

func TestRepository_CreateAvulso(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	l := &Lancamento{
		Tipo:           TipoDespesa,
		Categoria:      "Aluguel",
		Valor:          5000,
		DataVencimento: data(2024, time.April, 10),
		Status:         StatusAberto,
	}
	if err := repo.Create(l); err != nil {
		t.Fatalf("criar lançamento avulso: %v", err)
	}
	if l.ID == 0 {
		t.Error("ID não foi gerado")
	}

	salvo, err := repo.FindByID(l.ID)
	if err != nil {
		t.Fatalf("buscar lançamento: %v", err)
	}
	if salvo.Categoria != "Aluguel" || salvo.ContratoID != nil {
		t.Errorf("lançamento inesperado: %+v", salvo)
	}
}

func TestRepository_CreateContratoInexistente(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	id := uint(999)
	l := &Lancamento{
		ContratoID:     &id,
		Tipo:           TipoReceita,
		Categoria:      "Mensalidade 1/6",
		Valor:          10000,
		DataVencimento: data(2024, time.April, 10),
		Status:         StatusAberto,
	}
	if err := repo.Create(l); !errors.Is(err, ErrContratoInexistente) {
		t.Errorf("erro = %v; esperado ErrContratoInexistente", err)
	}
}

func TestRepository_UpdateStatusAjustaDataPagamento(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	l := &Lancamento{
		Tipo:           TipoReceita,
		Categoria:      "Mensalidade 1/1",
		Valor:          1000,
		DataVencimento: data(2024, time.February, 1),
		Status:         StatusAberto,
	}
	if err := repo.Create(l); err != nil {
		t.Fatalf("criar lançamento: %v", err)
	}

	pagamento := data(2024, time.February, 5)
	if err := repo.UpdateStatus(l.ID, StatusPago, pagamento); err != nil {
		t.Fatalf("marcar como pago: %v", err)
	}
	salvo, err := repo.FindByID(l.ID)
	if err != nil {
		t.Fatalf("buscar lançamento: %v", err)
	}
	if salvo.Status != StatusPago {
		t.Errorf("status = %s; esperado Pago", salvo.Status)
	}
	if salvo.DataPagamento == nil || !salvo.DataPagamento.Equal(pagamento) {
		t.Errorf("data de pagamento = %v; esperado %v", salvo.DataPagamento, pagamento)
	}

	// Reabrir zera a data de pagamento
	if err := repo.UpdateStatus(l.ID, StatusAberto, time.Time{}); err != nil {
		t.Fatalf("reabrir lançamento: %v", err)
	}
	salvo, err = repo.FindByID(l.ID)
	if err != nil {
		t.Fatalf("buscar lançamento: %v", err)
	}
	if salvo.DataPagamento != nil {
		t.Errorf("data de pagamento = %v; esperado nil", salvo.DataPagamento)
	}
}

func TestRepository_ListPorMesAno(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	vencimentos := []time.Time{
		data(2024, time.January, 15),
		data(2024, time.January, 31),
		data(2024, time.February, 1),
	}
	for i, v := range vencimentos {
		l := &Lancamento{
			Tipo:           TipoReceita,
			Categoria:      fmt.Sprintf("Mensalidade %d/3", i+1),
			Valor:          100,
			DataVencimento: v,
			Status:         StatusAberto,
		}
		if err := repo.Create(l); err != nil {
			t.Fatalf("criar lançamento: %v", err)
		}
	}

	janeiro, err := repo.ListPorMesAno(time.January, 2024, "")
	if err != nil {
		t.Fatalf("listar janeiro: %v", err)
	}
	if len(janeiro) != 2 {
		t.Errorf("janeiro tem %d lançamentos; esperado 2", len(janeiro))
	}

	despesas, err := repo.ListPorMesAno(time.January, 2024, TipoDespesa)
	if err != nil {
		t.Fatalf("listar despesas: %v", err)
	}
	if len(despesas) != 0 {
		t.Errorf("despesas de janeiro = %d; esperado 0", len(despesas))
	}
}

func TestRepository_SomaPorTipo(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	valores := []struct {
		tipo  Tipo
		valor float64
	}{
		{TipoReceita, 1000},
		{TipoReceita, 2000},
		{TipoDespesa, 500},
	}
	for _, v := range valores {
		l := &Lancamento{
			Tipo:           v.tipo,
			Categoria:      "Teste",
			Valor:          v.valor,
			DataVencimento: data(2024, time.March, 10),
			Status:         StatusAberto,
		}
		if err := repo.Create(l); err != nil {
			t.Fatalf("criar lançamento: %v", err)
		}
	}

	receita, err := repo.SomaPorTipo(time.March, 2024, TipoReceita)
	if err != nil {
		t.Fatalf("somar receitas: %v", err)
	}
	if receita != 3000 {
		t.Errorf("receita = %f; esperado 3000", receita)
	}

	// Mês sem lançamentos soma zero
	vazio, err := repo.SomaPorTipo(time.June, 2024, TipoReceita)
	if err != nil {
		t.Fatalf("somar mês vazio: %v", err)
	}
	if vazio != 0 {
		t.Errorf("soma do mês vazio = %f; esperado 0", vazio)
	}
}
