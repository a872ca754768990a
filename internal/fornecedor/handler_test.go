package fornecedor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/sowbrand/api-producao/internal/cache"
)

func executaRota(h *Handler, metodo, alvo string, corpo []byte) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/fornecedores", h.CriarFornecedor).Methods(http.MethodPost)
	r.HandleFunc("/fornecedores", h.ListarFornecedores).Methods(http.MethodGet)
	r.HandleFunc("/fornecedores/{id}", h.BuscarPorID).Methods(http.MethodGet)
	r.HandleFunc("/fornecedores/{id}", h.AtualizarFornecedor).Methods(http.MethodPut)
	r.HandleFunc("/fornecedores/{id}", h.DeletarFornecedor).Methods(http.MethodDelete)

	req := httptest.NewRequest(metodo, alvo, bytes.NewBuffer(corpo))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCriarFornecedor(t *testing.T) {
	h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()))

	w := executaRota(h, http.MethodPost, "/fornecedores", []byte(`{"name":"Ateliê Ponto Firme","category":"Costura","contact":"(11) 95555-1234"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("esperado 201, veio %d: %s", w.Code, w.Body.String())
	}
	var f Fornecedor
	if err := json.Unmarshal(w.Body.Bytes(), &f); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if f.ID == "" {
		t.Fatal("fornecedor criado deveria receber id")
	}
	if f.Categoria != CategoriaCostura {
		t.Fatalf("categoria esperada %q, veio %q", CategoriaCostura, f.Categoria)
	}
}

func TestCriarFornecedorValidacao(t *testing.T) {
	casos := []struct {
		nome  string
		corpo string
	}{
		{"nome vazio", `{"name":"","category":"Corte"}`},
		{"categoria desconhecida", `{"name":"Oficina X","category":"Tinturaria"}`},
		{"categoria ausente", `{"name":"Oficina X"}`},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()))
			w := executaRota(h, http.MethodPost, "/fornecedores", []byte(c.corpo))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("esperado 400, veio %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCategoriasDeProducao(t *testing.T) {
	validas := []Categoria{
		CategoriaMalha, CategoriaModelagem, CategoriaCorte, CategoriaCostura,
		CategoriaBordado, CategoriaEstampaSilk, CategoriaImpressaoDTF,
		CategoriaPrensaDTF, CategoriaAcabamento,
	}
	for _, c := range validas {
		if !c.Valida() {
			t.Fatalf("categoria %q deveria ser aceita", c)
		}
	}
	for _, c := range []Categoria{"", "Silk", "impressão dtf", "Lavanderia"} {
		if c.Valida() {
			t.Fatalf("categoria %q não deveria ser aceita", c)
		}
	}
}

func TestAtualizarEExcluirFornecedor(t *testing.T) {
	h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()))

	w := executaRota(h, http.MethodPost, "/fornecedores", []byte(`{"name":"DTF Express","category":"Impressão DTF"}`))
	var f Fornecedor
	if err := json.Unmarshal(w.Body.Bytes(), &f); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}

	w = executaRota(h, http.MethodPut, "/fornecedores/"+f.ID, []byte(`{"name":"DTF Express","category":"Prensa DTF","contact":"dtf@express.com"}`))
	if w.Code != http.StatusNoContent {
		t.Fatalf("esperado 204, veio %d: %s", w.Code, w.Body.String())
	}

	w = executaRota(h, http.MethodGet, "/fornecedores/"+f.ID, nil)
	var lido Fornecedor
	if err := json.Unmarshal(w.Body.Bytes(), &lido); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if lido.Categoria != CategoriaPrensaDTF || lido.Contato != "dtf@express.com" {
		t.Fatalf("atualização não aplicada: %+v", lido)
	}

	w = executaRota(h, http.MethodDelete, "/fornecedores/"+f.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("esperado 204, veio %d", w.Code)
	}
	w = executaRota(h, http.MethodGet, "/fornecedores/"+f.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("esperado 404 após exclusão, veio %d", w.Code)
	}
}
