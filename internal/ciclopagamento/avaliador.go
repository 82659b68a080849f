package ciclopagamento

import "time"

// Funções puras de decisão do ciclo. Nada aqui toca banco ou relógio; o
// chamador passa a data corrente, o que mantém a regra testável sem
// agendador próprio.

// DiaEfetivoReset ajusta o dia configurado ao tamanho do mês: dia 31 em
// fevereiro dispara no último dia do mês, não é pulado.
func DiaEfetivoReset(ano int, mes time.Month, diaConfigurado int) int {
	ultimoDia := time.Date(ano, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if diaConfigurado > ultimoDia {
		return ultimoDia
	}
	return diaConfigurado
}

// ResetDevido decide se o reset mensal está pendente para a data dada.
// Sem reset anterior, basta o dia efetivo do mês corrente já ter chegado.
// Com reset anterior, o mês corrente precisa ser estritamente posterior ao
// mês do último reset, além do dia efetivo ter chegado.
func ResetDevido(hoje time.Time, cfg ConfiguracaoCiclo) bool {
	diaEfetivo := DiaEfetivoReset(hoje.Year(), hoje.Month(), cfg.DiaReset)
	if hoje.Day() < diaEfetivo {
		return false
	}
	if cfg.UltimoReset == nil {
		return true
	}
	ultimo := *cfg.UltimoReset
	if hoje.Year() != ultimo.Year() {
		return hoje.Year() > ultimo.Year()
	}
	return hoje.Month() > ultimo.Month()
}

// ProximaDataReset calcula a próxima data prevista de reset, com o mesmo
// ajuste de fim de mês. Operação somente de leitura do control surface.
func ProximaDataReset(hoje time.Time, cfg ConfiguracaoCiclo) time.Time {
	diaEfetivo := DiaEfetivoReset(hoje.Year(), hoje.Month(), cfg.DiaReset)
	if hoje.Day() < diaEfetivo {
		return time.Date(hoje.Year(), hoje.Month(), diaEfetivo, 0, 0, 0, 0, time.UTC)
	}

	ano, mes := hoje.Year(), hoje.Month()+1
	if mes > time.December {
		ano, mes = ano+1, time.January
	}
	return time.Date(ano, mes, DiaEfetivoReset(ano, mes, cfg.DiaReset), 0, 0, 0, 0, time.UTC)
}
