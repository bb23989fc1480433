package contrato

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/PeegFlow/api-erp/internal/financeiro"
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
	if err := db.Exec("CREATE TABLE clientes (id INTEGER PRIMARY KEY)").Error; err != nil {
		t.Fatalf("criar tabela clientes: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrar contratos: %v", err)
	}
	if err := financeiro.Migrate(db); err != nil {
		t.Fatalf("migrar lançamentos: %v", err)
	}
	return db
}

func criarCliente(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	if err := db.Exec("INSERT INTO clientes (id) VALUES (1)").Error; err != nil {
		t.Fatalf("inserir cliente: %v", err)
	}
	return 1
}

func TestCriarComParcelas(t *testing.T) {
	db := novoBanco(t)
	repo := NewRepository(db)
	clienteID := criarCliente(t, db)

	inicio := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	c := &Contrato{
		ClienteID:   clienteID,
		Tipo:        "Consultoria TI",
		ValorTotal:  60000,
		QtdParcelas: 6,
		Inicio:      inicio,
		Fim:         CalcularFim(inicio, 6),
		Status:      StatusAtivo,
	}
	if err := repo.CriarComParcelas(c); err != nil {
		t.Fatalf("firmar contrato: %v", err)
	}

	parcelas, err := financeiro.NewRepository(db).ListByContrato(c.ID)
	if err != nil {
		t.Fatalf("listar parcelas: %v", err)
	}
	if len(parcelas) != 6 {
		t.Fatalf("parcelas geradas = %d; esperado 6", len(parcelas))
	}

	var soma float64
	for _, p := range parcelas {
		soma += p.Valor
		if p.Tipo != financeiro.TipoReceita {
			t.Errorf("parcela %d: tipo = %s; esperado Receita", p.ID, p.Tipo)
		}
		if p.Status != financeiro.StatusAberto {
			t.Errorf("parcela %d: status = %s; esperado Aberto", p.ID, p.Status)
		}
	}
	if math.Abs(soma-c.ValorTotal) > 1e-6 {
		t.Errorf("soma das parcelas = %f; esperado %f", soma, c.ValorTotal)
	}
}

func TestCriarComParcelas_RollbackSeGeracaoFalha(t *testing.T) {
	db := novoBanco(t)
	repo := NewRepository(db)
	clienteID := criarCliente(t, db)

	// Quantidade inválida só é detectada na geração do financeiro,
	// dentro da transação: o contrato não pode sobreviver órfão.
	c := &Contrato{
		ClienteID:   clienteID,
		Tipo:        "Financeira",
		ValorTotal:  30000,
		QtdParcelas: 0,
		Inicio:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.CriarComParcelas(c); !errors.Is(err, financeiro.ErrParcelamentoInvalido) {
		t.Fatalf("erro = %v; esperado ErrParcelamentoInvalido", err)
	}

	var n int64
	if err := db.Model(&Contrato{}).Count(&n).Error; err != nil {
		t.Fatalf("contar contratos: %v", err)
	}
	if n != 0 {
		t.Errorf("contratos persistidos = %d; esperado 0 (rollback)", n)
	}
}

func TestCriarComParcelas_ClienteInexistente(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	c := &Contrato{
		ClienteID:   42,
		Tipo:        "Estratégia",
		ValorTotal:  30000,
		QtdParcelas: 6,
		Inicio:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.CriarComParcelas(c); !errors.Is(err, ErrClienteInexistente) {
		t.Errorf("erro = %v; esperado ErrClienteInexistente", err)
	}
}

func TestSincronizarVigencia(t *testing.T) {
	db := novoBanco(t)
	repo := NewRepository(db)
	clienteID := criarCliente(t, db)

	hoje := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	vigente := &Contrato{
		ClienteID:   clienteID,
		Tipo:        "TI",
		ValorTotal:  1000,
		QtdParcelas: 1,
		Inicio:      hoje.AddDate(0, -1, 0),
		Fim:         hoje.AddDate(0, 5, 0),
		Status:      StatusEncerrado, // gravado defasado de propósito
	}
	vencido := &Contrato{
		ClienteID:   clienteID,
		Tipo:        "TI",
		ValorTotal:  1000,
		QtdParcelas: 1,
		Inicio:      hoje.AddDate(0, -8, 0),
		Fim:         hoje.AddDate(0, -2, 0),
		Status:      StatusAtivo, // idem
	}
	for _, c := range []*Contrato{vigente, vencido} {
		if err := repo.CriarComParcelas(c); err != nil {
			t.Fatalf("firmar contrato: %v", err)
		}
	}

	if err := repo.SincronizarVigencia(hoje); err != nil {
		t.Fatalf("sincronizar vigência: %v", err)
	}

	salvo, err := repo.FindByID(vigente.ID)
	if err != nil {
		t.Fatalf("buscar contrato vigente: %v", err)
	}
	if salvo.Status != StatusAtivo {
		t.Errorf("contrato vigente: status = %s; esperado Ativo", salvo.Status)
	}

	salvo, err = repo.FindByID(vencido.ID)
	if err != nil {
		t.Fatalf("buscar contrato vencido: %v", err)
	}
	if salvo.Status != StatusEncerrado {
		t.Errorf("contrato vencido: status = %s; esperado Encerrado", salvo.Status)
	}
}
