package ciclopagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func ptrData(t time.Time) *time.Time { return &t }

func TestResetDevido(t *testing.T) {
	casos := []struct {
		nome   string
		hoje   time.Time
		cfg    ConfiguracaoCiclo
		devido bool
	}{
		{
			nome:   "nunca resetado, antes do dia configurado",
			hoje:   dia(2025, time.August, 5),
			cfg:    ConfiguracaoCiclo{DiaReset: 10},
			devido: false,
		},
		{
			nome:   "nunca resetado, no dia configurado",
			hoje:   dia(2025, time.August, 10),
			cfg:    ConfiguracaoCiclo{DiaReset: 10},
			devido: true,
		},
		{
			nome:   "nunca resetado, depois do dia configurado",
			hoje:   dia(2025, time.August, 12),
			cfg:    ConfiguracaoCiclo{DiaReset: 10},
			devido: true,
		},
		{
			nome:   "mesmo mês do último reset",
			hoje:   dia(2025, time.August, 15),
			cfg:    ConfiguracaoCiclo{DiaReset: 10, UltimoReset: ptrData(dia(2025, time.August, 10))},
			devido: false,
		},
		{
			nome:   "mês seguinte, dia já passou",
			hoje:   dia(2025, time.September, 11),
			cfg:    ConfiguracaoCiclo{DiaReset: 10, UltimoReset: ptrData(dia(2025, time.August, 10))},
			devido: true,
		},
		{
			nome:   "mês seguinte, antes do dia",
			hoje:   dia(2025, time.September, 9),
			cfg:    ConfiguracaoCiclo{DiaReset: 10, UltimoReset: ptrData(dia(2025, time.August, 10))},
			devido: false,
		},
		{
			nome:   "virada de ano conta como mês posterior",
			hoje:   dia(2026, time.January, 10),
			cfg:    ConfiguracaoCiclo{DiaReset: 10, UltimoReset: ptrData(dia(2025, time.December, 10))},
			devido: true,
		},
		{
			nome:   "último reset em mês futuro não dispara",
			hoje:   dia(2025, time.August, 15),
			cfg:    ConfiguracaoCiclo{DiaReset: 10, UltimoReset: ptrData(dia(2025, time.September, 10))},
			devido: false,
		},
		{
			nome:   "dia 31 em fevereiro ajusta para o fim do mês",
			hoje:   dia(2025, time.February, 28),
			cfg:    ConfiguracaoCiclo{DiaReset: 31},
			devido: true,
		},
		{
			nome:   "dia 31 em fevereiro, antes do fim do mês",
			hoje:   dia(2025, time.February, 27),
			cfg:    ConfiguracaoCiclo{DiaReset: 31},
			devido: false,
		},
		{
			nome:   "dia 31 em fevereiro bissexto ajusta para 29",
			hoje:   dia(2024, time.February, 29),
			cfg:    ConfiguracaoCiclo{DiaReset: 31},
			devido: true,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.devido, ResetDevido(caso.hoje, caso.cfg))
		})
	}
}

func TestDiaEfetivoReset(t *testing.T) {
	assert.Equal(t, 28, DiaEfetivoReset(2025, time.February, 31))
	assert.Equal(t, 29, DiaEfetivoReset(2024, time.February, 31))
	assert.Equal(t, 30, DiaEfetivoReset(2025, time.April, 31))
	assert.Equal(t, 31, DiaEfetivoReset(2025, time.August, 31))
	assert.Equal(t, 10, DiaEfetivoReset(2025, time.February, 10))
}

func TestProximaDataReset(t *testing.T) {
	casos := []struct {
		nome     string
		hoje     time.Time
		cfg      ConfiguracaoCiclo
		esperada time.Time
	}{
		{
			nome:     "antes do dia, ainda este mês",
			hoje:     dia(2025, time.August, 5),
			cfg:      ConfiguracaoCiclo{DiaReset: 10},
			esperada: dia(2025, time.August, 10),
		},
		{
			nome:     "no dia, vai para o mês seguinte",
			hoje:     dia(2025, time.August, 10),
			cfg:      ConfiguracaoCiclo{DiaReset: 10},
			esperada: dia(2025, time.September, 10),
		},
		{
			nome:     "dezembro vira janeiro",
			hoje:     dia(2025, time.December, 15),
			cfg:      ConfiguracaoCiclo{DiaReset: 10},
			esperada: dia(2026, time.January, 10),
		},
		{
			nome:     "dia 31 em janeiro aponta para o fim de fevereiro",
			hoje:     dia(2025, time.January, 31),
			cfg:      ConfiguracaoCiclo{DiaReset: 31},
			esperada: dia(2025, time.February, 28),
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.esperada, ProximaDataReset(caso.hoje, caso.cfg))
		})
	}
}
