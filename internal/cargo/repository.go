package cargo

import (
	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cargo) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodos() ([]Cargo, error) {
	var cargos []Cargo
	err := r.DB.Order("nome").Find(&cargos).Error
	return cargos, err
}

func (r *Repository) BuscarPorID(id uint) (*Cargo, error) {
	var c Cargo
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) BuscarPorNome(nome string) (*Cargo, error) {
	var c Cargo
	if err := r.DB.Where("nome = ?", nome).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Cargo) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Cargo{}, id).Error
}

// SeedCargosIniciais garante os cargos padrão da academia. Inserção com
// ON CONFLICT DO NOTHING para ser idempotente entre reinícios.
func (r *Repository) SeedCargosIniciais() error {
	iniciais := []Cargo{
		{Nome: "MANAGER", Descricao: "Gerente/Proprietário da academia", SalarioBase: decimal.Zero},
		{Nome: "PERSONAL_TRAINER", Descricao: "Personal Trainer especializado", SalarioBase: decimal.NewFromInt(3500)},
		{Nome: "RECEPTIONIST", Descricao: "Recepcionista da academia", SalarioBase: decimal.NewFromInt(1800)},
		{Nome: "CLEANER", Descricao: "Funcionário de limpeza", SalarioBase: decimal.NewFromInt(1400)},
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nome"}},
		DoNothing: true,
	}).Create(&iniciais).Error
	if err != nil {
		return err
	}
	logger.Log.Debug("Cargos iniciais verificados")
	return nil
}
