package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Perfil de acesso: controla quais seções da navegação o usuário alcança.
type Perfil string

const (
	PerfilAdmin  Perfil = "admin"
	PerfilPadrao Perfil = "user"
)

// Valido indica se o perfil pertence ao conjunto aceito.
func (p Perfil) Valido() bool {
	return p == PerfilAdmin || p == PerfilPadrao
}

// Usuario é um membro da equipe com acesso ao sistema.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Login     string    `gorm:"size:50;uniqueIndex;not null" json:"login"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	Nome      string    `gorm:"size:100;not null" json:"nome"`
	Cargo     string    `gorm:"size:50" json:"cargo"`
	Perfil    Perfil    `gorm:"size:20;not null;default:'user'" json:"perfil"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin indica se o usuário tem perfil administrativo.
func (u Usuario) IsAdmin() bool {
	return u.Perfil == PerfilAdmin
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
