package mensageria

// Filas consumidas pelo finance-service.
// "fincance-" é o nome real publicado pelo serviço de funcionários;
// o erro de grafia faz parte do contrato e não pode ser corrigido aqui.
const (
	FilaFuncionarioCadastrado = "fincance-cadastro-funcionario-queue"
	FilaFuncionarioExcluido   = "fincance-employee-deleted-queue"
	FilaCargoAlterado         = "employee-role-changed-queue"
	FilaSituacaoAlterada      = "employee-status-changed-queue"
)

// Filas publicadas.
const (
	FilaFuncionarioPago        = "employee-paid-queue"
	FilaFuncionarioDemitido    = "employee-dismissed-queue"
	FilaStatusAnalytics        = "analytics-employee-status-changed-queue"
	FilaStatusUsuarios         = "user-employee-status-changed-queue"
	FilaDespesaRegistrada      = "finance.expense.registered"
	FilaDespesaRemovida        = "finance.expense.deleted"
	FilaCicloPagamentoResetado = "payment-cycle-reset-queue"
)

// FilasEntrada lista as filas de consumo na ordem em que são declaradas.
func FilasEntrada() []string {
	return []string{
		FilaFuncionarioCadastrado,
		FilaFuncionarioExcluido,
		FilaCargoAlterado,
		FilaSituacaoAlterada,
	}
}

// FilasSaida lista as filas de publicação, declaradas na inicialização
// para garantir que existam antes do primeiro publish.
func FilasSaida() []string {
	return []string{
		FilaFuncionarioPago,
		FilaFuncionarioDemitido,
		FilaStatusAnalytics,
		FilaStatusUsuarios,
		FilaDespesaRegistrada,
		FilaDespesaRemovida,
		FilaCicloPagamentoResetado,
	}
}
