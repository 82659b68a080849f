package cargo

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cargo é o registro de cargos com salário base, usado para calcular o
// valor pago na confirmação de pagamento de um funcionário.
type Cargo struct {
	gorm.Model
	Nome        string          `gorm:"size:100;not null;uniqueIndex" json:"nome"`
	Descricao   string          `gorm:"type:text" json:"descricao"`
	SalarioBase decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"salarioBase"`
}
