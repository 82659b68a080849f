package ciclopagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuscarOuCriarIdempotente(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	cfg, err := repo.BuscarOuCriar()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DiaReset)
	assert.Nil(t, cfg.UltimoReset)

	// Chamadas repetidas devolvem o mesmo singleton, sem linha nova.
	outra, err := repo.BuscarOuCriar()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, outra.ID)

	var total int64
	require.NoError(t, repo.DB.Model(&ConfiguracaoCiclo{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestAtualizarDiaValidacao(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	_, err := repo.AtualizarDia(0)
	assert.ErrorIs(t, err, ErrDiaInvalido)

	_, err = repo.AtualizarDia(32)
	assert.ErrorIs(t, err, ErrDiaInvalido)

	cfg, err := repo.AtualizarDia(1)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DiaReset)

	cfg, err = repo.AtualizarDia(31)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.DiaReset)
}

func TestAtualizarDiaNaoTocaUltimoReset(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	_, err := repo.BuscarOuCriar()
	require.NoError(t, err)

	quando := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarcarReset(repo.DB, quando))

	cfg, err := repo.AtualizarDia(25)
	require.NoError(t, err)
	require.NotNil(t, cfg.UltimoReset)
	assert.Equal(t, "2025-08-10", cfg.UltimoReset.Format("2006-01-02"))
	assert.Equal(t, 25, cfg.DiaReset)
}
