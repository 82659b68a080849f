package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/KromaEnergia/finance-service/internal/mensageria"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
	Pub  mensageria.Publicador
}

func NewHandler(repo *Repository, pub mensageria.Publicador) *Handler {
	return &Handler{Repo: repo, Pub: pub}
}

// POST /expenses/manual
func (h *Handler) CriarGastoManual(w http.ResponseWriter, r *http.Request) {
	var g GastoManual
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if g.Categoria == "" || g.Responsavel == "" || !g.Valor.IsPositive() {
		http.Error(w, "Categoria, responsável e valor positivo são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CriarGastoManual(&g); err != nil {
		http.Error(w, "Erro ao registrar gasto", http.StatusInternalServerError)
		return
	}

	err := h.Pub.Publicar(mensageria.FilaDespesaRegistrada, map[string]any{
		"type": "expense.registered",
		"payload": map[string]any{
			"amount":      g.Valor,
			"category":    g.Categoria,
			"description": g.Descricao,
			"date":        g.Data.Format("2006-01-02"),
			"responsible": g.Responsavel,
		},
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Falha ao publicar evento de despesa registrada")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(g)
}

// GET /expenses/manual
func (h *Handler) ListarGastosManuais(w http.ResponseWriter, r *http.Request) {
	gastos, err := h.Repo.ListarGastosManuais()
	if err != nil {
		http.Error(w, "Erro ao listar gastos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gastos)
}

// DELETE /expenses/manual/{id}
func (h *Handler) RemoverGastoManual(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.BuscarGastoManual(uint(id)); err != nil {
		http.Error(w, "Gasto não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.RemoverGastoManual(uint(id)); err != nil {
		http.Error(w, "Erro ao remover gasto", http.StatusInternalServerError)
		return
	}

	err = h.Pub.Publicar(mensageria.FilaDespesaRemovida, map[string]any{
		"type": "expense.deleted",
		"payload": map[string]any{
			"id":         id,
			"deleted_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Falha ao publicar evento de despesa removida")
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /expenses
func (h *Handler) ListarDespesas(w http.ResponseWriter, r *http.Request) {
	limite, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limite == 0 {
		limite = 50
	}
	deslocamento, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	despesas, err := h.Repo.ListarDespesas(limite, deslocamento)
	if err != nil {
		http.Error(w, "Erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(despesas)
}
