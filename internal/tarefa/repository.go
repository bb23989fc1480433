package tarefa

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProjetoInexistente indica uma tarefa apontando para projeto que não existe.
var ErrProjetoInexistente = errors.New("projeto referenciado não existe")

// Repository encapsula o acesso a dados de tarefas.
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

// Create insere uma tarefa, verificando antes a existência do projeto dono.
func (r *Repository) Create(t *Tarefa) error {
	var n int64
	if err := r.DB.Table("projetos").Where("id = ?", t.ProjetoID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrProjetoInexistente
	}
	return r.DB.Create(t).Error
}

// CreateInBatch cria múltiplas tarefas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(tarefas []*Tarefa) error {
	if len(tarefas) == 0 {
		return nil
	}
	return r.DB.Create(tarefas).Error
}

// FindByID busca uma tarefa pelo ID.
func (r *Repository) FindByID(id uint) (*Tarefa, error) {
	var t Tarefa
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByProjeto busca as tarefas de um projeto, por data limite.
func (r *Repository) ListByProjeto(projetoID uint) ([]Tarefa, error) {
	var tarefas []Tarefa
	err := r.DB.
		Where("projeto_id = ?", projetoID).
		Order("data_limite ASC").
		Find(&tarefas).Error
	return tarefas, err
}

// ListarTodas retorna todas as tarefas.
func (r *Repository) ListarTodas() ([]Tarefa, error) {
	var tarefas []Tarefa
	err := r.DB.Order("data_limite ASC").Find(&tarefas).Error
	return tarefas, err
}

// Update atualiza todos os campos de uma tarefa existente.
func (r *Repository) Update(t *Tarefa) error {
	return r.DB.Save(t).Error
}
