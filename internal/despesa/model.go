package despesa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos da tabela unificada de despesas.
const (
	TipoManual               = "manual"
	TipoPagamentoFuncionario = "employee_payment"
)

// GastoManual é um lançamento avulso registrado pela administração.
type GastoManual struct {
	gorm.Model
	Data        time.Time       `gorm:"not null" json:"data"`
	Categoria   string          `gorm:"size:100;not null" json:"categoria"`
	Descricao   string          `gorm:"type:text" json:"descricao"`
	Valor       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor"`
	Responsavel string          `gorm:"size:100;not null" json:"responsavel"`
}

// Despesa unifica gastos manuais e pagamentos de funcionários para consulta.
type Despesa struct {
	gorm.Model
	Descricao    string          `gorm:"size:255;not null" json:"descricao"`
	Valor        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor"`
	Data         time.Time       `gorm:"not null" json:"data"`
	Tipo         string          `gorm:"size:50;not null" json:"tipo"`
	ReferenciaID *uint           `json:"referenciaId"`
}
