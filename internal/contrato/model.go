package contrato

import (
	"time"

	"github.com/PeegFlow/api-erp/internal/financeiro"
	"gorm.io/gorm"
)

// Status de vigência do contrato.
type Status string

const (
	StatusAtivo     Status = "Ativo"
	StatusEncerrado Status = "Encerrado"
)

// Valido indica se o status pertence ao conjunto aceito.
func (s Status) Valido() bool {
	return s == StatusAtivo || s == StatusEncerrado
}

// Contrato representa um contrato de prestação de serviço firmado com um
// cliente. O fim é derivado: início + qtd_parcelas meses. As parcelas de
// Receita são geradas junto com o contrato, na mesma transação.
type Contrato struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClienteID   uint      `gorm:"not null;index" json:"clienteId"`
	Tipo        string    `gorm:"size:50;not null" json:"tipo"` // ex: "Consultoria TI", "Financeira"
	ValorTotal  float64   `gorm:"not null" json:"valorTotal"`
	QtdParcelas int       `gorm:"not null" json:"qtdParcelas"`
	Inicio      time.Time `gorm:"not null" json:"inicio"`
	Fim         time.Time `gorm:"not null" json:"fim"`
	Status      Status    `gorm:"size:20;not null;index" json:"status"`

	Lancamentos []financeiro.Lancamento `gorm:"foreignKey:ContratoID" json:"lancamentos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalcularFim deriva a data de término: início + qtdParcelas meses.
func CalcularFim(inicio time.Time, qtdParcelas int) time.Time {
	return financeiro.AdicionarMeses(inicio, qtdParcelas)
}

// StatusVigencia deriva o status na data de avaliação: Ativo enquanto o
// fim estiver no futuro, Encerrado depois disso. O valor persistido é uma
// projeção e deve ser ressincronizado a cada leitura.
func StatusVigencia(fim, hoje time.Time) Status {
	if fim.After(hoje) {
		return StatusAtivo
	}
	return StatusEncerrado
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
