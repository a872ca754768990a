package configuracao

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/sowbrand/api-producao/internal/cache"
)

// Handler expõe o registro único de configuração. Além de persistir,
// o salvamento espelha um snapshot JSON no cache, que as telas de
// impressão leem sem tocar no banco.
type Handler struct {
	Repository Repository
	Snapshot   cache.KV
}

func NewHandler(r Repository, snapshot cache.KV) *Handler {
	return &Handler{Repository: r, Snapshot: snapshot}
}

func (h *Handler) BuscarConfiguracao(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repository.Carregar(r.Context())
	if err != nil {
		log.Println("erro ao carregar configurações:", err)
		http.Error(w, "erro ao carregar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) SalvarConfiguracao(w http.ResponseWriter, r *http.Request) {
	var c Configuracao
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(c.Nome) == "" {
		http.Error(w, "nome da empresa é obrigatório", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(r.Context(), c); err != nil {
		log.Println("erro ao salvar configurações:", err)
		http.Error(w, "erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	h.espelhaSnapshot(r.Context(), c)

	c.ID = IDUnico
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Melhor esforço: falha no cache não desfaz o salvamento.
func (h *Handler) espelhaSnapshot(ctx context.Context, c Configuracao) {
	if h.Snapshot == nil {
		return
	}
	bruto, err := json.Marshal(c)
	if err != nil {
		return
	}
	if err := h.Snapshot.Definir(ctx, chaveSnapshot, string(bruto)); err != nil {
		log.Println("erro ao espelhar snapshot de configurações:", err)
	}
}
