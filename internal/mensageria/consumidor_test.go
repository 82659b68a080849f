package mensageria

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarRejeitaFilaForaDoContrato(t *testing.T) {
	c := NovoConsumidor()

	err := c.Registrar("fila-inventada", func([]byte) error { return nil })
	assert.ErrorIs(t, err, ErrFilaDesconhecida)

	err = c.Registrar(FilaFuncionarioCadastrado, func([]byte) error { return nil })
	assert.NoError(t, err)
}

func TestDespacharFilaDesconhecida(t *testing.T) {
	c := NovoConsumidor()

	err := c.Despachar("fila-inventada", []byte(`{}`))
	assert.ErrorIs(t, err, ErrFilaDesconhecida)

	// Fila do contrato mas sem handler registrado também é rejeitada.
	err = c.Despachar(FilaCargoAlterado, []byte(`{}`))
	assert.ErrorIs(t, err, ErrFilaDesconhecida)
}

func TestDespacharEntregaAoHandler(t *testing.T) {
	c := NovoConsumidor()

	var recebido []byte
	require.NoError(t, c.Registrar(FilaFuncionarioExcluido, func(corpo []byte) error {
		recebido = corpo
		return nil
	}))

	require.NoError(t, c.Despachar(FilaFuncionarioExcluido, []byte(`{"id":"emp-1"}`)))
	assert.JSONEq(t, `{"id":"emp-1"}`, string(recebido))
}

func TestDespacharPropagaErroDoHandler(t *testing.T) {
	c := NovoConsumidor()

	falha := fmt.Errorf("aplicação: %w", ErrPayloadInvalido)
	require.NoError(t, c.Registrar(FilaSituacaoAlterada, func([]byte) error {
		return falha
	}))

	err := c.Despachar(FilaSituacaoAlterada, []byte(`nao é json`))
	assert.ErrorIs(t, err, ErrPayloadInvalido)
}
