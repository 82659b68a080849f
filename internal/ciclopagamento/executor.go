package ciclopagamento

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/KromaEnergia/finance-service/internal/funcionario"
	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/KromaEnergia/finance-service/internal/mensageria"
	"gorm.io/gorm"
)

// Gatilhos de execução do reset.
const (
	GatilhoManual     = "manual"
	GatilhoAutomatico = "automatico"
)

// ErrResetEmExecucao sinaliza um reset concorrente já em andamento.
var ErrResetEmExecucao = errors.New("reset de ciclo já em execução")

// ResultadoReset descreve um reset concluído.
type ResultadoReset struct {
	DataReset            time.Time `json:"reset_date"`
	FuncionariosAfetados int64     `json:"employees_affected"`
	DiaReset             int       `json:"reset_day"`
}

// Executor realiza o reset mensal em uma única transação: volta para
// não-pago todos os funcionários ativos pagos e grava a marca de último
// reset. Duas barreiras impedem execução dupla: um guard atômico no
// processo e o lock da linha de configuração no banco, que serializa
// instâncias distintas — a segunda enxerga a marca já corrente e vira
// no-op no caminho automático.
type Executor struct {
	DB           *gorm.DB
	Config       *Repository
	Funcionarios *funcionario.Repository
	Pub          mensageria.Publicador

	emAndamento atomic.Bool

	// Agora permite injetar o relógio; nulo usa time.Now.
	Agora func() time.Time
}

func NovoExecutor(db *gorm.DB, cfg *Repository, funcs *funcionario.Repository, pub mensageria.Publicador) *Executor {
	return &Executor{DB: db, Config: cfg, Funcionarios: funcs, Pub: pub}
}

func (e *Executor) agora() time.Time {
	if e.Agora != nil {
		return e.Agora()
	}
	return time.Now().UTC()
}

// ExecutarReset roda o reset. Gatilho manual executa incondicionalmente;
// o automático reavalia a pendência já dentro do lock, para que a corrida
// entre duas verificações "devido" resolva em um único reset.
func (e *Executor) ExecutarReset(gatilho string) (*ResultadoReset, error) {
	if !e.emAndamento.CompareAndSwap(false, true) {
		return nil, ErrResetEmExecucao
	}
	defer e.emAndamento.Store(false)

	// Garante o singleton antes de travar: o reset precisa funcionar
	// mesmo quando a reconciliação de subida não conseguiu criar a
	// configuração (banco fora do ar na inicialização).
	if _, err := e.Config.BuscarOuCriar(); err != nil {
		return nil, err
	}

	hoje := e.agora()
	var resultado *ResultadoReset

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		cfg, err := e.Config.TravarParaAtualizacao(tx)
		if err != nil {
			return err
		}

		if gatilho == GatilhoAutomatico && !ResetDevido(hoje, *cfg) {
			return nil
		}

		afetados, err := e.Funcionarios.ResetarPagamentos(tx)
		if err != nil {
			return err
		}
		if err := e.Config.MarcarReset(tx, hoje); err != nil {
			return err
		}

		resultado = &ResultadoReset{
			DataReset:            hoje,
			FuncionariosAfetados: afetados,
			DiaReset:             cfg.DiaReset,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if resultado == nil {
		return nil, nil
	}

	logger.Log.WithField("gatilho", gatilho).
		WithField("afetados", resultado.FuncionariosAfetados).
		Info("Reset de ciclo de pagamento concluído")

	err = e.Pub.Publicar(mensageria.FilaCicloPagamentoResetado, map[string]any{
		"type": "payment.cycle.reset",
		"payload": map[string]any{
			"reset_date":         resultado.DataReset.Format("2006-01-02"),
			"employees_affected": resultado.FuncionariosAfetados,
			"reset_day":          resultado.DiaReset,
		},
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Falha ao publicar evento de reset de ciclo")
	}

	return resultado, nil
}

// VerificarEExecutar é o ponto de entrada reativo: avalia a pendência e
// dispara o reset automático quando devido. Resultado nulo sem erro
// significa "nada a fazer".
func (e *Executor) VerificarEExecutar() (*ResultadoReset, error) {
	cfg, err := e.Config.BuscarOuCriar()
	if err != nil {
		return nil, err
	}
	if !ResetDevido(e.agora(), *cfg) {
		return nil, nil
	}
	return e.ExecutarReset(GatilhoAutomatico)
}
