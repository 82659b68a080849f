package funcionario

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarSeAusente insere o registro apenas se o funcionário ainda não
// existe (ON CONFLICT DO NOTHING). Retorna true quando a linha foi criada,
// false quando já havia registro — eventos de cadastro duplicados caem no
// segundo caso sem alterar estado.
func (r *Repository) CriarSeAusente(s *StatusPagamento) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "funcionario_id"}},
		DoNothing: true,
	}).Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) BuscarPorFuncionario(funcionarioID string) (*StatusPagamento, error) {
	var s StatusPagamento
	if err := r.DB.Where("funcionario_id = ?", funcionarioID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListarTodos() ([]StatusPagamento, error) {
	var lista []StatusPagamento
	err := r.DB.Order("funcionario_id").Find(&lista).Error
	return lista, err
}

// MarcarDemitido é um UPDATE de linha única condicionado à situação atual,
// então reaplicar o mesmo evento não gera nova transição. Retorna true
// somente quando a situação de fato mudou.
func (r *Repository) MarcarDemitido(funcionarioID string) (bool, error) {
	res := r.DB.Model(&StatusPagamento{}).
		Where("funcionario_id = ? AND situacao <> ?", funcionarioID, SituacaoDemitido).
		Update("situacao", SituacaoDemitido)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) AtualizarCargo(funcionarioID, cargo string) (bool, error) {
	res := r.DB.Model(&StatusPagamento{}).
		Where("funcionario_id = ?", funcionarioID).
		Update("cargo", cargo)
	return res.RowsAffected > 0, res.Error
}

// AtualizarSituacao sobrescreve o vínculo com o valor do evento. O caso
// ativo=false converge com o efeito de MarcarDemitido.
func (r *Repository) AtualizarSituacao(funcionarioID string, ativo bool) (bool, error) {
	situacao := SituacaoAtivo
	if !ativo {
		situacao = SituacaoDemitido
	}
	res := r.DB.Model(&StatusPagamento{}).
		Where("funcionario_id = ? AND situacao <> ?", funcionarioID, situacao).
		Update("situacao", situacao)
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) ConfirmarPagamento(funcionarioID string, quando time.Time) error {
	return r.DB.Model(&StatusPagamento{}).
		Where("funcionario_id = ?", funcionarioID).
		Updates(map[string]any{"pago": true, "ultimo_pagamento": quando}).Error
}

// ResetarPagamentos volta para não-pago todos os funcionários ativos que
// estavam pagos, dentro da transação do executor de ciclo. Demitidos nunca
// reentram no ciclo. Retorna o número de linhas alteradas.
func (r *Repository) ResetarPagamentos(tx *gorm.DB) (int64, error) {
	res := tx.Model(&StatusPagamento{}).
		Where("situacao = ? AND pago = ?", SituacaoAtivo, true).
		Update("pago", false)
	return res.RowsAffected, res.Error
}
