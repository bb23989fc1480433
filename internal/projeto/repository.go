package projeto

import (
	"errors"

	"github.com/PeegFlow/api-erp/internal/tarefa"
	"gorm.io/gorm"
)

// ErrContratoInexistente indica um projeto apontando para contrato que não existe.
var ErrContratoInexistente = errors.New("contrato referenciado não existe")

// Repository encapsula o acesso a dados de projetos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarComTarefas grava o projeto e suas tarefas iniciais em uma única
// transação.
func (r *Repository) CriarComTarefas(p *Projeto, iniciais []*tarefa.Tarefa) error {
	var n int64
	if err := r.DB.Table("contratos").Where("id = ?", p.ContratoID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrContratoInexistente
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for _, t := range iniciais {
			t.ProjetoID = p.ID
		}
		return tarefa.NewRepository(tx).CreateInBatch(iniciais)
	})
}

// FindByID busca um projeto pelo ID, com suas tarefas.
func (r *Repository) FindByID(id uint) (*Projeto, error) {
	var p Projeto
	if err := r.DB.Preload("Tarefas").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodos retorna todos os projetos.
func (r *Repository) ListarTodos() ([]Projeto, error) {
	var projetos []Projeto
	err := r.DB.Order("inicio DESC").Find(&projetos).Error
	return projetos, err
}

// CountPorStatus retorna a quantidade de projetos com o status informado.
func (r *Repository) CountPorStatus(status Status) (int64, error) {
	var n int64
	err := r.DB.Model(&Projeto{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// Update salva alterações de um projeto existente.
func (r *Repository) Update(p *Projeto) error {
	return r.DB.Save(p).Error
}
