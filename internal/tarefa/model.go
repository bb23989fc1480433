package tarefa

import (
	"time"

	"gorm.io/gorm"
)

// Status de uma tarefa.
type Status string

const (
	StatusPendente    Status = "Pendente"
	StatusEmAndamento Status = "Em Andamento"
	StatusConcluida   Status = "Concluída"
)

// Valido indica se o status pertence ao conjunto aceito.
func (s Status) Valido() bool {
	return s == StatusPendente || s == StatusEmAndamento || s == StatusConcluida
}

// Tarefa é uma etapa de trabalho dentro de um projeto.
type Tarefa struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ProjetoID     uint       `gorm:"not null;index" json:"projetoId"`
	Descricao     string     `gorm:"size:200;not null" json:"descricao"`
	Tipo          string     `gorm:"size:50" json:"tipo"` // ex: "Inicial", "Etapa", "Extra"
	DataLimite    time.Time  `json:"dataLimite"`
	Responsavel   string     `gorm:"size:100;index" json:"responsavel"`
	Status        Status     `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	DataConclusao *time.Time `json:"dataConclusao,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AplicarStatus muda o status mantendo o invariante da data de conclusão:
// ela é preenchida quando a tarefa é concluída e limpa em qualquer outro
// status. Voltar de Concluída para Pendente é permitido e apenas limpa a
// data; não há validação de retrocesso. Reaplicar Concluída preserva a
// data original.
func AplicarStatus(t *Tarefa, novo Status, hoje time.Time) {
	t.Status = novo
	if novo == StatusConcluida {
		if t.DataConclusao == nil {
			d := hoje
			t.DataConclusao = &d
		}
	} else {
		t.DataConclusao = nil
	}
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Tarefa{})
}
