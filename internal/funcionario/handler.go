package funcionario

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/KromaEnergia/finance-service/internal/cargo"
	"github.com/KromaEnergia/finance-service/internal/despesa"
	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/KromaEnergia/finance-service/internal/mensageria"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Repo     *Repository
	Cargos   *cargo.Repository
	Despesas *despesa.Repository
	Pub      mensageria.Publicador
}

func NewHandler(repo *Repository, cargos *cargo.Repository, despesas *despesa.Repository, pub mensageria.Publicador) *Handler {
	return &Handler{Repo: repo, Cargos: cargos, Despesas: despesas, Pub: pub}
}

// GET /payments/status
func (h *Handler) ListarStatus(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar status de pagamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// GET /payments/{employeeId}
func (h *Handler) BuscarStatus(w http.ResponseWriter, r *http.Request) {
	funcionarioID := mux.Vars(r)["employeeId"]
	s, err := h.Repo.BuscarPorFuncionario(funcionarioID)
	if err != nil {
		http.Error(w, "Funcionário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PATCH /payments/{employeeId}/pay
func (h *Handler) ConfirmarPagamento(w http.ResponseWriter, r *http.Request) {
	funcionarioID := mux.Vars(r)["employeeId"]

	registro, err := h.Repo.BuscarPorFuncionario(funcionarioID)
	if err != nil {
		http.Error(w, "Funcionário não encontrado", http.StatusNotFound)
		return
	}

	// Salário vem do cargo atual; cargo sem cadastro paga 0.
	valor := decimal.Zero
	nomeCargo := ""
	if registro.Cargo != nil {
		nomeCargo = *registro.Cargo
		if c, err := h.Cargos.BuscarPorNome(nomeCargo); err == nil {
			valor = c.SalarioBase
		} else {
			logger.Log.WithField("cargo", nomeCargo).Warn("Cargo sem salário cadastrado, usando 0")
		}
	}

	agora := time.Now().UTC()
	if err := h.Repo.ConfirmarPagamento(funcionarioID, agora); err != nil {
		http.Error(w, "Erro ao confirmar pagamento", http.StatusInternalServerError)
		return
	}

	ref := registro.ID
	if err := h.Despesas.RegistrarPagamentoFuncionario(funcionarioID, nomeCargo, valor, agora, &ref); err != nil {
		logger.Log.WithField("funcionario", funcionarioID).WithError(err).Warn("Falha ao espelhar pagamento em despesas")
	}

	eventos := []struct {
		fila  string
		corpo any
	}{
		{mensageria.FilaFuncionarioPago, map[string]any{
			"id":       funcionarioID,
			"amount":   valor,
			"position": registro.Cargo,
			"month":    int(agora.Month()),
			"year":     agora.Year(),
			"paid_at":  agora.Format(time.RFC3339),
		}},
		{mensageria.FilaStatusAnalytics, map[string]any{"id": funcionarioID, "active": true}},
		{mensageria.FilaStatusUsuarios, map[string]any{"id": funcionarioID, "active": true}},
	}
	for _, ev := range eventos {
		if err := h.Pub.Publicar(ev.fila, ev.corpo); err != nil {
			logger.Log.WithField("fila", ev.fila).WithError(err).Warn("Falha ao publicar evento de pagamento")
		}
	}

	atualizado, err := h.Repo.BuscarPorFuncionario(funcionarioID)
	if err != nil {
		http.Error(w, "Erro ao carregar status atualizado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// POST /payments/{employeeId}/dismiss
func (h *Handler) Demitir(w http.ResponseWriter, r *http.Request) {
	funcionarioID := mux.Vars(r)["employeeId"]

	registro, err := h.Repo.BuscarPorFuncionario(funcionarioID)
	if err != nil {
		http.Error(w, "Funcionário não encontrado", http.StatusNotFound)
		return
	}

	if _, err := h.Repo.MarcarDemitido(funcionarioID); err != nil {
		http.Error(w, "Erro ao demitir funcionário", http.StatusInternalServerError)
		return
	}

	eventos := []struct {
		fila  string
		corpo any
	}{
		{mensageria.FilaStatusAnalytics, map[string]any{"id": funcionarioID, "active": false}},
		{mensageria.FilaStatusUsuarios, map[string]any{"id": funcionarioID, "active": false}},
		{mensageria.FilaFuncionarioDemitido, map[string]any{
			"id":           funcionarioID,
			"dismissed_at": time.Now().UTC().Format(time.RFC3339),
			"position":     registro.Cargo,
			"reason":       "manual-dismissal",
		}},
	}
	for _, ev := range eventos {
		if err := h.Pub.Publicar(ev.fila, ev.corpo); err != nil {
			logger.Log.WithField("fila", ev.fila).WithError(err).Warn("Falha ao publicar evento de demissão")
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
