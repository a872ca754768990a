package fornecedor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
)

type Handler struct {
	Repository Repository
}

func NewHandler(r Repository) *Handler {
	return &Handler{Repository: r}
}

type fornecedorRequest struct {
	Nome      string    `json:"name"`
	Categoria Categoria `json:"category"`
	Contato   string    `json:"contact"`
}

func (req *fornecedorRequest) valida() string {
	if strings.TrimSpace(req.Nome) == "" {
		return "nome é obrigatório"
	}
	if !req.Categoria.Valida() {
		return "categoria inválida"
	}
	return ""
}

func (h *Handler) CriarFornecedor(w http.ResponseWriter, r *http.Request) {
	var req fornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.valida(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	f := Fornecedor{Nome: req.Nome, Categoria: req.Categoria, Contato: req.Contato}
	if err := h.Repository.Criar(r.Context(), &f); err != nil {
		http.Error(w, "erro ao salvar fornecedor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

func (h *Handler) ListarFornecedores(w http.ResponseWriter, r *http.Request) {
	fornecedores, err := h.Repository.Listar(r.Context())
	if err != nil {
		http.Error(w, "erro ao buscar fornecedores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fornecedores)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar fornecedor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

func (h *Handler) AtualizarFornecedor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req fornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.valida(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	novos := Fornecedor{Nome: req.Nome, Categoria: req.Categoria, Contato: req.Contato}
	if err := h.Repository.Atualizar(r.Context(), id, &novos); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado) {
			http.Error(w, "fornecedor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar fornecedor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletarFornecedor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		http.Error(w, "erro ao excluir fornecedor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
