package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
)

// Handler encapsula o repositório de clientes
type Handler struct {
	Repository Repository
}

func NewHandler(r Repository) *Handler {
	return &Handler{Repository: r}
}

type clienteRequest struct {
	Nome        string `json:"name"`
	Telefone    string `json:"phone"`
	Email       string `json:"email"`
	Endereco    string `json:"address"`
	CNPJ        string `json:"cnpj"`
	Observacoes string `json:"observations"`
}

// CriarCliente cadastra um novo cliente
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	c := Cliente{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		CNPJ:        req.CNPJ,
		Observacoes: req.Observacoes,
	}
	if err := h.Repository.Criar(r.Context(), &c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes devolve todos os clientes em ordem alfabética
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.Listar(r.Context())
	if err != nil {
		http.Error(w, "erro ao buscar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if naoEncontrado(err) {
			http.Error(w, "cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	novos := Cliente{
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		CNPJ:        req.CNPJ,
		Observacoes: req.Observacoes,
	}
	if err := h.Repository.Atualizar(r.Context(), id, &novos); err != nil {
		if naoEncontrado(err) {
			http.Error(w, "cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		http.Error(w, "erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func naoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado)
}
