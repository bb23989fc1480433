package contrato

import (
	"errors"
	"time"

	"github.com/PeegFlow/api-erp/internal/financeiro"
	"gorm.io/gorm"
)

// ErrClienteInexistente indica um contrato apontando para cliente que não existe.
var ErrClienteInexistente = errors.New("cliente referenciado não existe")

// Repository encapsula o acesso a dados de contratos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarComParcelas grava o contrato e gera suas parcelas de Receita em uma
// única transação: se a geração falhar, o contrato não fica órfão de
// financeiro nem o financeiro órfão de contrato.
func (r *Repository) CriarComParcelas(c *Contrato) error {
	var n int64
	if err := r.DB.Table("clientes").Where("id = ?", c.ClienteID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrClienteInexistente
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		lancamentos, err := financeiro.GerarLancamentos(c.ID, c.ValorTotal, c.QtdParcelas, c.Inicio)
		if err != nil {
			return err
		}
		return financeiro.NewRepository(tx).CreateInBatch(lancamentos)
	})
}

// FindByID busca um contrato pelo ID, com seus lançamentos.
func (r *Repository) FindByID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Preload("Lancamentos").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos retorna todos os contratos.
func (r *Repository) ListarTodos() ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.Order("inicio DESC").Find(&contratos).Error
	return contratos, err
}

// ListarPorCliente retorna os contratos de um cliente.
func (r *Repository) ListarPorCliente(clienteID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.Where("cliente_id = ?", clienteID).Order("inicio DESC").Find(&contratos).Error
	return contratos, err
}

// ListarAtivos retorna os contratos vigentes na data informada.
func (r *Repository) ListarAtivos(hoje time.Time) ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.Where("fim > ?", hoje).Order("inicio DESC").Find(&contratos).Error
	return contratos, err
}

// Update salva alterações em um contrato existente.
func (r *Repository) Update(c *Contrato) error {
	return r.DB.Save(c).Error
}

// SincronizarVigencia reprojeta o status persistido a partir da data de
// avaliação; chamado a cada listagem para que o campo gravado não fique
// defasado em relação ao derivado.
func (r *Repository) SincronizarVigencia(hoje time.Time) error {
	if err := r.DB.Model(&Contrato{}).
		Where("fim > ? AND status <> ?", hoje, StatusAtivo).
		Update("status", StatusAtivo).Error; err != nil {
		return err
	}
	return r.DB.Model(&Contrato{}).
		Where("fim <= ? AND status <> ?", hoje, StatusEncerrado).
		Update("status", StatusEncerrado).Error
}
