package financeiro

import (
	"time"

	"gorm.io/gorm"
)

// Tipo classifica o lançamento financeiro.
type Tipo string

const (
	TipoReceita Tipo = "Receita"
	TipoDespesa Tipo = "Despesa"
)

// Valido indica se o tipo pertence ao conjunto aceito.
func (t Tipo) Valido() bool {
	return t == TipoReceita || t == TipoDespesa
}

// Status de um lançamento financeiro.
type Status string

const (
	StatusAberto   Status = "Aberto"
	StatusPago     Status = "Pago"
	StatusAtrasado Status = "Atrasado"
)

// Valido indica se o status pertence ao conjunto aceito.
func (s Status) Valido() bool {
	return s == StatusAberto || s == StatusPago || s == StatusAtrasado
}

// Transições permitidas entre status de lançamento.
// Pago é terminal; Atrasado só pode ser quitado.
var transicoes = map[Status]map[Status]bool{
	StatusAberto:   {StatusPago: true, StatusAtrasado: true},
	StatusAtrasado: {StatusPago: true},
	StatusPago:     {},
}

// TransicaoPermitida valida a mudança de status. Manter o mesmo status é sempre permitido.
func TransicaoPermitida(de, para Status) bool {
	if de == para {
		return true
	}
	return transicoes[de][para]
}

// Lancamento representa um evento de caixa datado: parcela de contrato
// (Receita) ou conta avulsa (Despesa sem contrato).
type Lancamento struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ContratoID     *uint      `gorm:"index" json:"contratoId,omitempty"`
	Tipo           Tipo       `gorm:"size:20;not null;index" json:"tipo"`
	Categoria      string     `gorm:"size:100;not null" json:"categoria"`
	Valor          float64    `gorm:"not null" json:"valor"`
	DataVencimento time.Time  `gorm:"not null;index" json:"dataVencimento"`
	Status         Status     `gorm:"size:20;not null;default:'Aberto';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// StatusEfetivo aplica a regra de leitura sobre o status persistido:
// um lançamento Aberto com vencimento anterior à data de avaliação é
// considerado Atrasado. Pago é sempre Pago, independente do vencimento.
// O valor gravado pode estar defasado; consumidores devem usar esta
// derivação em vez de confiar no campo armazenado.
func StatusEfetivo(l Lancamento, hoje time.Time) Status {
	if l.Status == StatusAberto && l.DataVencimento.Before(truncarDia(hoje)) {
		return StatusAtrasado
	}
	return l.Status
}

// truncarDia descarta o componente de hora; o modelo trabalha só com datas.
func truncarDia(t time.Time) time.Time {
	ano, mes, dia := t.Date()
	return time.Date(ano, mes, dia, 0, 0, 0, 0, t.Location())
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}
