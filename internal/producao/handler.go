package producao

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
	"github.com/sowbrand/api-producao/internal/cliente"
	"github.com/sowbrand/api-producao/internal/sequencia"
)

// Handler encapsula o repositório de pedidos, o gerador de números e o
// repositório de clientes para a resolução do nome desnormalizado.
type Handler struct {
	Repository Repository
	Clientes   cliente.Repository
	Sequencias sequencia.Gerador
}

func NewHandler(r Repository, clientes cliente.Repository, sequencias sequencia.Gerador) *Handler {
	return &Handler{Repository: r, Clientes: clientes, Sequencias: sequencias}
}

type criarPedidoRequest struct {
	ClienteID       string `json:"clientId"`
	Produto         string `json:"product"`
	Quantidade      int    `json:"quantity"`
	OrigemModelagem string `json:"modelingOrigin"`
}

type atualizarEtapaRequest struct {
	Campo   string `json:"field"`
	Valor   string `json:"value"`
	Revisao *int64 `json:"revision"`
}

// CriarPedido valida a entrada, resolve o nome do cliente e grava o
// pedido com as oito etapas em Pendente. Validação acontece antes de
// qualquer chamada de persistência.
func (h *Handler) CriarPedido(w http.ResponseWriter, r *http.Request) {
	var req criarPedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.OrigemModelagem == "" {
		req.OrigemModelagem = OrigemSowBrand
	}

	// Constrói com nome provisório só para validar os campos antes de
	// tocar em qualquer colaborador externo.
	if _, err := NovoPedido("-", req.ClienteID, NomeClienteRemovido, req.Produto, req.Quantidade, req.OrigemModelagem); err != nil {
		var ev *ErroValidacao
		if errors.As(err, &ev) {
			http.Error(w, ev.Msg, http.StatusBadRequest)
			return
		}
		http.Error(w, "pedido inválido", http.StatusBadRequest)
		return
	}

	// Falha suave: cliente removido não impede o pedido.
	nomeCliente := ""
	if c, err := h.Clientes.BuscarPorID(r.Context(), req.ClienteID); err == nil {
		nomeCliente = c.Nome
	}

	n, err := h.Sequencias.Proximo(r.Context(), sequencia.NomePedido, sequencia.SementePedido)
	if err != nil {
		log.Println("erro ao gerar número do pedido:", err)
		http.Error(w, "erro ao gerar número do pedido", http.StatusInternalServerError)
		return
	}
	numero := fmt.Sprintf("PED-%04d", n)

	p, err := NovoPedido(numero, req.ClienteID, nomeCliente, req.Produto, req.Quantidade, req.OrigemModelagem)
	if err != nil {
		http.Error(w, "pedido inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(r.Context(), p); err != nil {
		log.Println("erro ao criar pedido:", err)
		http.Error(w, "erro ao criar pedido", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarPedidos devolve todos os pedidos em ordem decrescente de número.
func (h *Handler) ListarPedidos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Repository.Listar(r.Context())
	if err != nil {
		log.Println("erro ao buscar pedidos:", err)
		http.Error(w, "erro ao buscar pedidos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pedidos)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if naoEncontrado(err) {
			http.Error(w, "pedido não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar pedido", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// AtualizarEtapa troca um único campo de uma etapa e regrava o blob
// inteiro de etapas — o armazenamento não tem patch de subdocumento.
// A escrita é condicionada à revisão lida: se outra sessão gravou no
// meio, o chamador recebe 409 e nada é perdido em silêncio.
func (h *Handler) AtualizarEtapa(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	chave := vars["etapa"]

	var req atualizarEtapaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		if naoEncontrado(err) {
			http.Error(w, "pedido não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar pedido", http.StatusInternalServerError)
		return
	}

	revisao := p.Revisao
	if req.Revisao != nil {
		revisao = *req.Revisao
	}

	atualizado, err := p.AtualizarEtapa(chave, req.Campo, req.Valor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarEtapas(r.Context(), id, revisao, atualizado.Etapas); err != nil {
		switch {
		case errors.Is(err, ErrConflitoRevisao):
			http.Error(w, "pedido alterado por outra sessão; recarregue", http.StatusConflict)
		case naoEncontrado(err):
			http.Error(w, "pedido não encontrado", http.StatusNotFound)
		default:
			log.Println("erro ao atualizar etapa:", err)
			http.Error(w, "falha ao salvar alteração", http.StatusInternalServerError)
		}
		return
	}

	atualizado.Revisao = revisao + 1
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

func (h *Handler) DeletarPedido(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		http.Error(w, "erro ao excluir pedido", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func naoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, cache.ErrRegistroNaoEncontrado)
}
