package financeiro

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrContratoInexistente indica um lançamento apontando para contrato que não existe.
var ErrContratoInexistente = errors.New("contrato referenciado não existe")

// Repository encapsula o acesso a dados de lançamentos financeiros.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Create insere um lançamento avulso. Se houver contrato vinculado,
// verifica a existência do dono antes de gravar para não inserir órfão.
func (r *Repository) Create(l *Lancamento) error {
	if l.ContratoID != nil {
		var n int64
		if err := r.DB.Table("contratos").Where("id = ?", *l.ContratoID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrContratoInexistente
		}
	}
	return r.DB.Create(l).Error
}

// CreateInBatch cria múltiplos lançamentos de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(lancamentos []*Lancamento) error {
	if len(lancamentos) == 0 {
		return nil
	}
	return r.DB.Create(lancamentos).Error
}

// FindByID busca um único lançamento pelo seu ID.
func (r *Repository) FindByID(id uint) (*Lancamento, error) {
	var l Lancamento
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByContrato busca todos os lançamentos de um contrato, por vencimento.
func (r *Repository) ListByContrato(contratoID uint) ([]Lancamento, error) {
	var lancamentos []Lancamento
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("data_vencimento ASC").
		Find(&lancamentos).Error
	return lancamentos, err
}

// ListPorMesAno busca os lançamentos que vencem no mês/ano informados,
// opcionalmente filtrados por tipo (tipo vazio = todos).
func (r *Repository) ListPorMesAno(mes time.Month, ano int, tipo Tipo) ([]Lancamento, error) {
	inicio := time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	q := r.DB.Where("data_vencimento >= ? AND data_vencimento < ?", inicio, fim)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	var lancamentos []Lancamento
	err := q.Order("data_vencimento ASC").Find(&lancamentos).Error
	return lancamentos, err
}

// ListPorPeriodo busca os lançamentos com vencimento dentro do intervalo
// fechado [de, ate].
func (r *Repository) ListPorPeriodo(de, ate time.Time) ([]Lancamento, error) {
	var lancamentos []Lancamento
	err := r.DB.
		Where("data_vencimento >= ? AND data_vencimento <= ?", de, ate).
		Order("data_vencimento ASC").
		Find(&lancamentos).Error
	return lancamentos, err
}

// ListarTodos retorna todos os lançamentos, por vencimento.
func (r *Repository) ListarTodos() ([]Lancamento, error) {
	var lancamentos []Lancamento
	err := r.DB.Order("data_vencimento ASC").Find(&lancamentos).Error
	return lancamentos, err
}

// Update atualiza todos os campos de um lançamento existente (Save exige PK).
func (r *Repository) Update(l *Lancamento) error {
	return r.DB.Save(l).Error
}

// UpdateStatus atualiza o status e ajusta data_pagamento:
// Pago define data_pagamento = data informada; qualquer outro status zera (NULL).
func (r *Repository) UpdateStatus(id uint, status Status, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusPago {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&Lancamento{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// SomaPorTipo soma os valores dos lançamentos de um tipo no mês/ano informados.
func (r *Repository) SomaPorTipo(mes time.Month, ano int, tipo Tipo) (float64, error) {
	inicio := time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	var total float64
	err := r.DB.Model(&Lancamento{}).
		Where("tipo = ? AND data_vencimento >= ? AND data_vencimento < ?", tipo, inicio, fim).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
