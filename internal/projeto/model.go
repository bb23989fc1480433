package projeto

import (
	"time"

	"github.com/PeegFlow/api-erp/internal/tarefa"
	"gorm.io/gorm"
)

// Status de um projeto. Atribuído manualmente: não há derivação automática
// a partir das tarefas concluídas.
type Status string

const (
	StatusEmAndamento Status = "Em Andamento"
	StatusConcluido   Status = "Concluído"
)

// Valido indica se o status pertence ao conjunto aceito.
func (s Status) Valido() bool {
	return s == StatusEmAndamento || s == StatusConcluido
}

// Projeto é a frente de execução vinculada a um contrato.
type Projeto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContratoID  uint      `gorm:"not null;index" json:"contratoId"`
	Nome        string    `gorm:"size:150;not null" json:"nome"`
	Inicio      time.Time `json:"inicio"`
	Fim         time.Time `json:"fim"`
	Status      Status    `gorm:"size:20;not null;default:'Em Andamento';index" json:"status"`
	Responsavel string    `gorm:"size:100;index" json:"responsavel"`

	Tarefas []tarefa.Tarefa `gorm:"foreignKey:ProjetoID" json:"tarefas,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Projeto{})
}
