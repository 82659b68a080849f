package ciclopagamento

import "github.com/KromaEnergia/finance-service/internal/logger"

// ReconciliarNaInicializacao garante a configuração padrão e verifica o
// reset pendente uma vez na subida do processo. Falhas aqui são logadas e
// engolidas: o serviço precisa subir mesmo com o banco indisponível, a
// próxima verificação manual ou agendada repete a avaliação.
func ReconciliarNaInicializacao(repo *Repository, exec *Executor) {
	if _, err := repo.BuscarOuCriar(); err != nil {
		logger.Log.WithError(err).Error("Não foi possível garantir a configuração de ciclo na inicialização")
		return
	}

	resultado, err := exec.VerificarEExecutar()
	switch {
	case err != nil:
		logger.Log.WithError(err).Error("Verificação de reset na inicialização falhou")
	case resultado != nil:
		logger.Log.WithField("afetados", resultado.FuncionariosAfetados).
			Info("Reset automático executado na inicialização")
	default:
		logger.Log.Info("Verificação de ciclo concluída, nenhum reset pendente")
	}
}
