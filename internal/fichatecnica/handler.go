package fichatecnica

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
	"github.com/sowbrand/api-producao/internal/sequencia"
)

type Handler struct {
	Repository Repository
	Sequencias sequencia.Gerador
}

func NewHandler(r Repository, sequencias sequencia.Gerador) *Handler {
	return &Handler{Repository: r, Sequencias: sequencias}
}

// CriarFicha abre uma ficha nova a partir do modelo padrão, com
// referência numerada pela sequência.
func (h *Handler) CriarFicha(w http.ResponseWriter, r *http.Request) {
	n, err := h.Sequencias.Proximo(r.Context(), sequencia.NomeFicha, 0)
	if err != nil {
		log.Println("erro ao gerar referência da ficha:", err)
		http.Error(w, "erro ao gerar referência da ficha", http.StatusInternalServerError)
		return
	}

	f := Nova(n, time.Now())
	if err := h.Repository.Criar(r.Context(), &f); err != nil {
		log.Println("erro ao criar ficha técnica:", err)
		http.Error(w, "erro ao criar ficha técnica", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

func (h *Handler) ListarFichas(w http.ResponseWriter, r *http.Request) {
	fichas, err := h.Repository.Listar(r.Context())
	if err != nil {
		http.Error(w, "erro ao buscar fichas técnicas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fichas)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "ficha técnica não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar ficha técnica", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// SalvarFicha regrava o documento completo vindo do editor.
func (h *Handler) SalvarFicha(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var f Ficha
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if f.TecnicaEstampa != "" && !TecnicaValida(f.TecnicaEstampa) {
		http.Error(w, "técnica de estampa inválida", http.StatusBadRequest)
		return
	}
	f.ID = id

	if err := h.Repository.Salvar(r.Context(), &f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "ficha técnica não encontrada", http.StatusNotFound)
			return
		}
		log.Println("erro ao salvar ficha técnica:", err)
		http.Error(w, "erro ao salvar ficha técnica", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

func (h *Handler) DeletarFicha(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		http.Error(w, "erro ao excluir ficha técnica", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
