package ciclopagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type Handler struct {
	Repo     *Repository
	Executor *Executor
}

func NewHandler(repo *Repository, exec *Executor) *Handler {
	return &Handler{Repo: repo, Executor: exec}
}

type atualizarConfigRequest struct {
	DiaReset int `json:"reset_day"`
}

// GET /payments/cycle/config
func (h *Handler) BuscarConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Repo.BuscarOuCriar()
	if err != nil {
		http.Error(w, "Erro ao carregar configuração de ciclo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// PUT /payments/cycle/config
func (h *Handler) AtualizarConfig(w http.ResponseWriter, r *http.Request) {
	var req atualizarConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	cfg, err := h.Repo.AtualizarDia(req.DiaReset)
	if errors.Is(err, ErrDiaInvalido) {
		http.Error(w, "Reset day must be between 1 and 31", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao atualizar configuração", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// GET /payments/cycle/next-reset
func (h *Handler) ProximoReset(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Repo.BuscarOuCriar()
	if err != nil {
		http.Error(w, "Erro ao carregar configuração de ciclo", http.StatusInternalServerError)
		return
	}

	proxima := ProximaDataReset(time.Now().UTC(), *cfg)
	resposta := map[string]any{
		"next_reset_date": proxima.Format("2006-01-02"),
		"reset_day":       cfg.DiaReset,
		"last_reset_date": nil,
	}
	if cfg.UltimoReset != nil {
		resposta["last_reset_date"] = cfg.UltimoReset.Format("2006-01-02")
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// POST /payments/cycle/reset — reset manual, roda incondicionalmente.
func (h *Handler) ResetManual(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Executor.ExecutarReset(GatilhoManual)
	if errors.Is(err, ErrResetEmExecucao) {
		http.Error(w, "Um reset de ciclo já está em execução", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao executar reset de ciclo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":         "Payment cycle reset completed successfully",
		"reset_date":      resultado.DataReset.Format("2006-01-02"),
		"employees_reset": resultado.FuncionariosAfetados,
	})
}

// POST /payments/cycle/check-auto-reset — verificação reativa; o chamador
// periódico externo bate aqui.
func (h *Handler) VerificarResetAutomatico(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Executor.VerificarEExecutar()
	if errors.Is(err, ErrResetEmExecucao) {
		// Outro reset resolve a pendência; esta chamada vira no-op.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"reset_executed": false,
			"message":        "Reset already in progress",
		})
		return
	}
	if err != nil {
		http.Error(w, "Erro ao verificar reset automático", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if resultado != nil {
		json.NewEncoder(w).Encode(map[string]any{
			"reset_executed":  true,
			"employees_reset": resultado.FuncionariosAfetados,
			"reset_date":      resultado.DataReset.Format("2006-01-02"),
			"message":         "Automatic reset executed successfully",
		})
		return
	}

	cfg, err := h.Repo.BuscarOuCriar()
	if err != nil {
		http.Error(w, "Erro ao carregar configuração de ciclo", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"reset_executed":  false,
		"message":         "No reset needed at this time",
		"next_reset_date": ProximaDataReset(time.Now().UTC(), *cfg).Format("2006-01-02"),
		"reset_day":       cfg.DiaReset,
	})
}
