package ciclopagamento

import "time"

// idConfiguracao fixa a chave do registro único de configuração.
const idConfiguracao = 1

// ConfiguracaoCiclo é o singleton que rege o ciclo mensal: em que dia do
// mês o status de pagamento volta para não-pago e quando foi o último
// reset. UltimoReset nulo significa que nunca houve reset.
type ConfiguracaoCiclo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	DiaReset    int        `gorm:"not null;default:10" json:"reset_day"`
	UltimoReset *time.Time `json:"last_reset_date"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

func (ConfiguracaoCiclo) TableName() string { return "configuracao_ciclo_pagamento" }
