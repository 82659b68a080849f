package ciclopagamento

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDiaInvalido rejeita dias de reset fora de [1,31].
var ErrDiaInvalido = errors.New("dia de reset deve estar entre 1 e 31")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarOuCriar devolve a configuração única, criando a padrão (dia 10,
// nunca resetado) se ausente. O INSERT usa ON CONFLICT DO NOTHING sobre a
// chave fixa, então duas instâncias inicializando ao mesmo tempo não criam
// registro duplicado.
func (r *Repository) BuscarOuCriar() (*ConfiguracaoCiclo, error) {
	padrao := ConfiguracaoCiclo{ID: idConfiguracao, DiaReset: 10}
	err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&padrao).Error
	if err != nil {
		return nil, err
	}

	var cfg ConfiguracaoCiclo
	if err := r.DB.First(&cfg, idConfiguracao).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AtualizarDia muda o dia de reset sem tocar na marca de último reset.
func (r *Repository) AtualizarDia(dia int) (*ConfiguracaoCiclo, error) {
	if dia < 1 || dia > 31 {
		return nil, ErrDiaInvalido
	}
	if _, err := r.BuscarOuCriar(); err != nil {
		return nil, err
	}
	err := r.DB.Model(&ConfiguracaoCiclo{}).
		Where("id = ?", idConfiguracao).
		Update("dia_reset", dia).Error
	if err != nil {
		return nil, err
	}

	var cfg ConfiguracaoCiclo
	if err := r.DB.First(&cfg, idConfiguracao).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TravarParaAtualizacao lê a configuração segurando o lock de linha até o
// fim da transação, serializando execuções concorrentes do reset. SQLite
// não aceita FOR UPDATE, mas serializa escritas na própria conexão.
func (r *Repository) TravarParaAtualizacao(tx *gorm.DB) (*ConfiguracaoCiclo, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var cfg ConfiguracaoCiclo
	if err := q.First(&cfg, idConfiguracao).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MarcarReset grava a data do último reset dentro da transação do executor.
// A marca guarda apenas a data (meia-noite UTC): o ciclo é diário, e um
// segundo reset no mesmo dia deve deixar a marca idêntica.
func (r *Repository) MarcarReset(tx *gorm.DB, quando time.Time) error {
	data := time.Date(quando.Year(), quando.Month(), quando.Day(), 0, 0, 0, 0, time.UTC)
	return tx.Model(&ConfiguracaoCiclo{}).
		Where("id = ?", idConfiguracao).
		Update("ultimo_reset", data).Error
}
