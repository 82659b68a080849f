package funcionario

import (
	"time"

	"gorm.io/gorm"
)

// Situação de vínculo. Um funcionário demitido permanece na tabela para
// consulta, mas fica fora de todos os resets de ciclo futuros.
const (
	SituacaoAtivo    = "ativo"
	SituacaoDemitido = "demitido"
)

// StatusPagamento é o espelho local do funcionário do diretório externo,
// criado a partir do primeiro evento de cadastro recebido pela fila.
// A linha nunca é removida pelo sincronizador; exclusões viram demissão.
type StatusPagamento struct {
	gorm.Model
	FuncionarioID   string     `gorm:"size:50;not null;uniqueIndex" json:"funcionarioId"`
	Cargo           *string    `gorm:"size:100" json:"cargo"`
	Situacao        string     `gorm:"size:20;not null;default:ativo" json:"situacao"`
	Pago            bool       `gorm:"not null;default:false" json:"pago"`
	UltimoPagamento *time.Time `json:"ultimoPagamento"`
}

func (StatusPagamento) TableName() string { return "status_pagamento_funcionarios" }
