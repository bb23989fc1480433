package cliente

import (
	"time"

	"github.com/PeegFlow/api-erp/internal/contrato"
	"gorm.io/gorm"
)

// Cliente representa uma empresa da carteira.
type Cliente struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:150;not null" json:"nome"`
	CpfCnpj      string    `gorm:"size:20;not null" json:"cpfCnpj"`
	Setor        string    `gorm:"size:50;index" json:"setor"` // ex: "Tecnologia", "Varejo"
	Porte        string    `gorm:"size:20" json:"porte"`       // "Pequeno", "Médio", "Grande"
	Filiais      int       `gorm:"not null;default:1" json:"filiais"`
	Endereco     string    `gorm:"size:255" json:"endereco"`
	Email        string    `gorm:"size:100" json:"email"`
	DataCadastro time.Time `gorm:"not null" json:"dataCadastro"`

	Contratos []contrato.Contrato `gorm:"foreignKey:ClienteID" json:"contratos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
