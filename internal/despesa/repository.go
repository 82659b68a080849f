package despesa

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CriarGastoManual(g *GastoManual) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		descricao := "Gasto Manual - " + g.Categoria
		if g.Descricao != "" {
			descricao += ": " + g.Descricao
		}
		ref := g.ID
		return tx.Create(&Despesa{
			Descricao:    descricao,
			Valor:        g.Valor,
			Data:         g.Data,
			Tipo:         TipoManual,
			ReferenciaID: &ref,
		}).Error
	})
}

func (r *Repository) ListarGastosManuais() ([]GastoManual, error) {
	var gastos []GastoManual
	err := r.DB.Order("data desc").Find(&gastos).Error
	return gastos, err
}

func (r *Repository) BuscarGastoManual(id uint) (*GastoManual, error) {
	var g GastoManual
	if err := r.DB.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// RemoverGastoManual apaga o gasto e a linha espelhada na tabela unificada.
func (r *Repository) RemoverGastoManual(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tipo = ? AND referencia_id = ?", TipoManual, id).Delete(&Despesa{}).Error; err != nil {
			return err
		}
		return tx.Delete(&GastoManual{}, id).Error
	})
}

// RegistrarPagamentoFuncionario espelha um pagamento confirmado na tabela
// unificada. referenciaID é o id interno do status de pagamento.
func (r *Repository) RegistrarPagamentoFuncionario(funcionarioID string, cargo string, valor decimal.Decimal, quando time.Time, referenciaID *uint) error {
	descricao := fmt.Sprintf("Pagamento Funcionário - %s", funcionarioID)
	if cargo != "" {
		descricao += fmt.Sprintf(" (%s)", cargo)
	}
	return r.DB.Create(&Despesa{
		Descricao:    descricao,
		Valor:        valor,
		Data:         quando,
		Tipo:         TipoPagamentoFuncionario,
		ReferenciaID: referenciaID,
	}).Error
}

func (r *Repository) ListarDespesas(limite, deslocamento int) ([]Despesa, error) {
	var despesas []Despesa
	q := r.DB.Order("data desc")
	if limite > 0 {
		q = q.Limit(limite)
	}
	if deslocamento > 0 {
		q = q.Offset(deslocamento)
	}
	err := q.Find(&despesas).Error
	return despesas, err
}
