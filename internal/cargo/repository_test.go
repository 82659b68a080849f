package cargo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Cargo{}))
	return db
}

func TestSeedCargosIniciaisIdempotente(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	require.NoError(t, repo.SeedCargosIniciais())
	require.NoError(t, repo.SeedCargosIniciais())

	cargos, err := repo.ListarTodos()
	require.NoError(t, err)
	assert.Len(t, cargos, 4)

	trainer, err := repo.BuscarPorNome("PERSONAL_TRAINER")
	require.NoError(t, err)
	assert.True(t, trainer.SalarioBase.Equal(decimal.NewFromInt(3500)))
}

func TestSeedNaoSobrescreveSalarioAjustado(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))
	require.NoError(t, repo.SeedCargosIniciais())

	c, err := repo.BuscarPorNome("CLEANER")
	require.NoError(t, err)
	c.SalarioBase = decimal.NewFromInt(1600)
	require.NoError(t, repo.Atualizar(c))

	require.NoError(t, repo.SeedCargosIniciais())

	c, err = repo.BuscarPorNome("CLEANER")
	require.NoError(t, err)
	assert.True(t, c.SalarioBase.Equal(decimal.NewFromInt(1600)))
}
