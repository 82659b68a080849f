package funcionario

import (
	"encoding/json"
	"fmt"

	"github.com/KromaEnergia/finance-service/internal/mensageria"
)

// Eventos de ciclo de vida vindos do diretório de funcionários. O payload
// usa "id" ou "employeeId" dependendo do serviço emissor; os dois são
// aceitos (o contrato herdado nunca foi unificado).

type FuncionarioCadastrado struct {
	ID    string
	Cargo string
}

type FuncionarioExcluido struct {
	ID string
}

type CargoAlterado struct {
	ID    string
	Cargo string
}

type SituacaoAlterada struct {
	ID    string
	Ativo bool
}

type payloadEvento struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
	Active     *bool  `json:"active"`
}

func (p *payloadEvento) identificador() string {
	if p.ID != "" {
		return p.ID
	}
	return p.EmployeeID
}

func decodificar(corpo []byte) (*payloadEvento, error) {
	var p payloadEvento
	if err := json.Unmarshal(corpo, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", mensageria.ErrPayloadInvalido, err)
	}
	if p.identificador() == "" {
		return nil, fmt.Errorf("%w: identificador do funcionário ausente", mensageria.ErrPayloadInvalido)
	}
	return &p, nil
}

func ParseCadastro(corpo []byte) (*FuncionarioCadastrado, error) {
	p, err := decodificar(corpo)
	if err != nil {
		return nil, err
	}
	return &FuncionarioCadastrado{ID: p.identificador(), Cargo: p.Role}, nil
}

func ParseExclusao(corpo []byte) (*FuncionarioExcluido, error) {
	p, err := decodificar(corpo)
	if err != nil {
		return nil, err
	}
	return &FuncionarioExcluido{ID: p.identificador()}, nil
}

func ParseMudancaCargo(corpo []byte) (*CargoAlterado, error) {
	p, err := decodificar(corpo)
	if err != nil {
		return nil, err
	}
	if p.Role == "" {
		return nil, fmt.Errorf("%w: cargo ausente", mensageria.ErrPayloadInvalido)
	}
	return &CargoAlterado{ID: p.identificador(), Cargo: p.Role}, nil
}

func ParseMudancaSituacao(corpo []byte) (*SituacaoAlterada, error) {
	p, err := decodificar(corpo)
	if err != nil {
		return nil, err
	}
	if p.Active == nil {
		return nil, fmt.Errorf("%w: campo active ausente", mensageria.ErrPayloadInvalido)
	}
	return &SituacaoAlterada{ID: p.identificador(), Ativo: *p.Active}, nil
}
