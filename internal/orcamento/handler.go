package orcamento

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

// CriarOrcamento abre um rascunho numerado pela sequência.
func (h *Handler) CriarOrcamento(w http.ResponseWriter, r *http.Request) {
	n, err := h.Sequencias.Proximo(r.Context(), sequencia.NomeOrcamento, 0)
	if err != nil {
		log.Println("erro ao gerar número do orçamento:", err)
		http.Error(w, "erro ao gerar número do orçamento", http.StatusInternalServerError)
		return
	}

	o := Novo(n, time.Now())
	if err := h.Repository.Criar(r.Context(), &o); err != nil {
		log.Println("erro ao criar orçamento:", err)
		http.Error(w, "erro ao criar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

func (h *Handler) ListarOrcamentos(w http.ResponseWriter, r *http.Request) {
	orcamentos, err := h.Repository.Listar(r.Context())
	if err != nil {
		http.Error(w, "erro ao buscar orçamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orcamentos)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	o, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "orçamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar orçamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// SalvarOrcamento regrava o documento completo vindo do editor. O
// número e o id do caminho prevalecem sobre o corpo.
func (h *Handler) SalvarOrcamento(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var o Orcamento
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	o.ID = id

	existente, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "orçamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar orçamento", http.StatusInternalServerError)
		return
	}
	o.Numero = existente.Numero
	o.Ano = existente.Ano

	if err := h.Repository.Salvar(r.Context(), &o); err != nil {
		log.Println("erro ao salvar orçamento:", err)
		http.Error(w, "erro ao salvar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

func (h *Handler) DeletarOrcamento(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		http.Error(w, "erro ao excluir orçamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
