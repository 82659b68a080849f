package funcionario

import (
	"time"

	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/KromaEnergia/finance-service/internal/mensageria"
)

// Sincronizador aplica eventos de ciclo de vida ao estado local. Todos os
// métodos são idempotentes: o broker entrega pelo menos uma vez e sem
// ordem garantida, então cada handler é um merge convergente sobre a linha
// do funcionário (criação condicionada à ausência, sobrescrita nos campos
// terminais). Eventos para funcionário nunca cadastrado viram no-op com
// log de aviso — escolha de política, o emissor não documenta esse caso.
type Sincronizador struct {
	Repo *Repository
	Pub  mensageria.Publicador
}

func NovoSincronizador(repo *Repository, pub mensageria.Publicador) *Sincronizador {
	return &Sincronizador{Repo: repo, Pub: pub}
}

func (s *Sincronizador) AplicarCadastro(corpo []byte) error {
	ev, err := ParseCadastro(corpo)
	if err != nil {
		return err
	}

	registro := StatusPagamento{
		FuncionarioID: ev.ID,
		Situacao:      SituacaoAtivo,
		Pago:          false,
	}
	if ev.Cargo != "" {
		registro.Cargo = &ev.Cargo
	}

	criado, err := s.Repo.CriarSeAusente(&registro)
	if err != nil {
		return err
	}
	if criado {
		logger.Log.WithField("funcionario", ev.ID).Info("Status de pagamento criado")
	} else {
		logger.Log.WithField("funcionario", ev.ID).Debug("Cadastro duplicado ignorado")
	}
	return nil
}

func (s *Sincronizador) AplicarExclusao(corpo []byte) error {
	ev, err := ParseExclusao(corpo)
	if err != nil {
		return err
	}

	registro, buscaErr := s.Repo.BuscarPorFuncionario(ev.ID)

	transicionou, err := s.Repo.MarcarDemitido(ev.ID)
	if err != nil {
		return err
	}
	if !transicionou {
		// Funcionário desconhecido ou já demitido: estado já convergiu.
		logger.Log.WithField("funcionario", ev.ID).Warn("Exclusão sem transição, ignorando")
		return nil
	}

	logger.Log.WithField("funcionario", ev.ID).Info("Funcionário marcado como demitido")

	var cargo *string
	if buscaErr == nil {
		cargo = registro.Cargo
	}
	err = s.Pub.Publicar(mensageria.FilaFuncionarioDemitido, map[string]any{
		"id":           ev.ID,
		"dismissed_at": time.Now().UTC().Format(time.RFC3339),
		"position":     cargo,
		"reason":       "employee-directory-deletion",
	})
	if err != nil {
		// O estado local já convergiu; o eco é melhor-esforço.
		logger.Log.WithField("funcionario", ev.ID).WithError(err).Warn("Falha ao publicar eco de demissão")
	}
	return nil
}

func (s *Sincronizador) AplicarMudancaCargo(corpo []byte) error {
	ev, err := ParseMudancaCargo(corpo)
	if err != nil {
		return err
	}

	atualizou, err := s.Repo.AtualizarCargo(ev.ID, ev.Cargo)
	if err != nil {
		return err
	}
	if !atualizou {
		logger.Log.WithField("funcionario", ev.ID).Warn("Mudança de cargo para funcionário desconhecido, ignorando")
		return nil
	}
	logger.Log.WithField("funcionario", ev.ID).WithField("cargo", ev.Cargo).Info("Cargo atualizado")
	return nil
}

func (s *Sincronizador) AplicarMudancaSituacao(corpo []byte) error {
	ev, err := ParseMudancaSituacao(corpo)
	if err != nil {
		return err
	}

	atualizou, err := s.Repo.AtualizarSituacao(ev.ID, ev.Ativo)
	if err != nil {
		return err
	}
	if !atualizou {
		logger.Log.WithField("funcionario", ev.ID).Debug("Mudança de situação sem efeito")
		return nil
	}
	logger.Log.WithField("funcionario", ev.ID).WithField("ativo", ev.Ativo).Info("Situação atualizada")
	return nil
}
