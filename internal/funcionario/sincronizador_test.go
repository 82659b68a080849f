package funcionario

import (
	"testing"

	"github.com/KromaEnergia/finance-service/internal/mensageria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type publicadorMemoria struct {
	mensagens []mensagemPublicada
}

type mensagemPublicada struct {
	Fila  string
	Corpo any
}

func (p *publicadorMemoria) Publicar(fila string, corpo any) error {
	p.mensagens = append(p.mensagens, mensagemPublicada{Fila: fila, Corpo: corpo})
	return nil
}

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&StatusPagamento{}))
	return db
}

func novoSincronizadorTeste(t *testing.T) (*Sincronizador, *Repository, *publicadorMemoria) {
	t.Helper()
	repo := NewRepository(novoBancoTeste(t))
	pub := &publicadorMemoria{}
	return NovoSincronizador(repo, pub), repo, pub
}

func TestCadastroDuplicadoGeraUmaLinha(t *testing.T) {
	sinc, repo, _ := novoSincronizadorTeste(t)
	evento := []byte(`{"id":"emp-1","role":"RECEPTIONIST"}`)

	require.NoError(t, sinc.AplicarCadastro(evento))
	require.NoError(t, sinc.AplicarCadastro(evento))

	lista, err := repo.ListarTodos()
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "emp-1", lista[0].FuncionarioID)
	assert.Equal(t, SituacaoAtivo, lista[0].Situacao)
	assert.False(t, lista[0].Pago)
	require.NotNil(t, lista[0].Cargo)
	assert.Equal(t, "RECEPTIONIST", *lista[0].Cargo)
}

func TestCadastroNaoSobrescreveRegistroExistente(t *testing.T) {
	sinc, repo, _ := novoSincronizadorTeste(t)

	require.NoError(t, sinc.AplicarCadastro([]byte(`{"id":"emp-1","role":"CLEANER"}`)))
	require.NoError(t, sinc.AplicarExclusao([]byte(`{"id":"emp-1"}`)))

	// Reentrega atrasada do cadastro não ressuscita o funcionário.
	require.NoError(t, sinc.AplicarCadastro([]byte(`{"id":"emp-1","role":"CLEANER"}`)))

	s, err := repo.BuscarPorFuncionario("emp-1")
	require.NoError(t, err)
	assert.Equal(t, SituacaoDemitido, s.Situacao)
}

func TestExclusaoIdempotenteEComEco(t *testing.T) {
	sinc, repo, pub := novoSincronizadorTeste(t)

	require.NoError(t, sinc.AplicarCadastro([]byte(`{"id":"emp-1","role":"CLEANER"}`)))
	require.NoError(t, sinc.AplicarExclusao([]byte(`{"id":"emp-1"}`)))
	require.NoError(t, sinc.AplicarExclusao([]byte(`{"id":"emp-1"}`)))

	s, err := repo.BuscarPorFuncionario("emp-1")
	require.NoError(t, err)
	assert.Equal(t, SituacaoDemitido, s.Situacao)

	// Uma transição, um eco — a reentrega não publica de novo.
	var ecos int
	for _, m := range pub.mensagens {
		if m.Fila == mensageria.FilaFuncionarioDemitido {
			ecos++
		}
	}
	assert.Equal(t, 1, ecos)
}

func TestExclusaoDeDesconhecidoEhNoOp(t *testing.T) {
	sinc, repo, pub := novoSincronizadorTeste(t)

	require.NoError(t, sinc.AplicarExclusao([]byte(`{"id":"fantasma"}`)))

	lista, err := repo.ListarTodos()
	require.NoError(t, err)
	assert.Empty(t, lista)
	assert.Empty(t, pub.mensagens)
}

func TestMudancaCargoAntesDoCadastro(t *testing.T) {
	sinc, repo, _ := novoSincronizadorTeste(t)

	// Entrega fora de ordem: mudança de cargo chega antes do cadastro.
	require.NoError(t, sinc.AplicarMudancaCargo([]byte(`{"id":"emp-1","role":"MANAGER"}`)))

	lista, err := repo.ListarTodos()
	require.NoError(t, err)
	assert.Empty(t, lista)

	require.NoError(t, sinc.AplicarCadastro([]byte(`{"id":"emp-1","role":"CLEANER"}`)))
	require.NoError(t, sinc.AplicarMudancaCargo([]byte(`{"id":"emp-1","role":"MANAGER"}`)))

	s, err := repo.BuscarPorFuncionario("emp-1")
	require.NoError(t, err)
	require.NotNil(t, s.Cargo)
	assert.Equal(t, "MANAGER", *s.Cargo)
}

func TestMudancaSituacaoConvergeComExclusao(t *testing.T) {
	sinc, repo, _ := novoSincronizadorTeste(t)

	require.NoError(t, sinc.AplicarCadastro([]byte(`{"id":"emp-1","role":"CLEANER"}`)))
	require.NoError(t, sinc.AplicarMudancaSituacao([]byte(`{"id":"emp-1","active":false}`)))

	s, err := repo.BuscarPorFuncionario("emp-1")
	require.NoError(t, err)
	assert.Equal(t, SituacaoDemitido, s.Situacao)

	// Exclusão depois da desativação já encontra o estado convergido.
	require.NoError(t, sinc.AplicarExclusao([]byte(`{"id":"emp-1"}`)))

	require.NoError(t, sinc.AplicarMudancaSituacao([]byte(`{"id":"emp-1","active":true}`)))
	s, err = repo.BuscarPorFuncionario("emp-1")
	require.NoError(t, err)
	assert.Equal(t, SituacaoAtivo, s.Situacao)
}

func TestPayloadAceitaEmployeeId(t *testing.T) {
	sinc, repo, _ := novoSincronizadorTeste(t)

	require.NoError(t, sinc.AplicarCadastro([]byte(`{"employeeId":"emp-7","role":"CLEANER"}`)))

	s, err := repo.BuscarPorFuncionario("emp-7")
	require.NoError(t, err)
	assert.Equal(t, "emp-7", s.FuncionarioID)
}

func TestPayloadInvalido(t *testing.T) {
	sinc, _, _ := novoSincronizadorTeste(t)

	casos := []struct {
		nome    string
		aplicar func([]byte) error
		corpo   string
	}{
		{"cadastro sem id", sinc.AplicarCadastro, `{"role":"CLEANER"}`},
		{"cadastro com json quebrado", sinc.AplicarCadastro, `{"id":`},
		{"exclusão sem id", sinc.AplicarExclusao, `{}`},
		{"mudança de cargo sem cargo", sinc.AplicarMudancaCargo, `{"id":"emp-1"}`},
		{"mudança de situação sem active", sinc.AplicarMudancaSituacao, `{"id":"emp-1"}`},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			err := caso.aplicar([]byte(caso.corpo))
			assert.ErrorIs(t, err, mensageria.ErrPayloadInvalido)
		})
	}
}
