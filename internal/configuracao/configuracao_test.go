package configuracao

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sowbrand/api-producao/internal/cache"
)

func TestRepositoryLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("sem registro salvo devolve o padrão", func(t *testing.T) {
		repo := NewRepositoryLocal(cache.NovaMemoria())
		c, err := repo.Carregar(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if c != Padrao() {
			t.Fatalf("esperado padrão de fábrica, veio %+v", c)
		}
	})

	t.Run("salvar e recarregar", func(t *testing.T) {
		repo := NewRepositoryLocal(cache.NovaMemoria())
		c := Padrao()
		c.Nome = "Sow Brand Confecções"
		c.Contato = "(11) 98888-7777"

		if err := repo.Salvar(ctx, c); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		lida, err := repo.Carregar(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if lida.Nome != "Sow Brand Confecções" || lida.Contato != "(11) 98888-7777" {
			t.Fatalf("recarga divergente: %+v", lida)
		}
		if lida.ID != IDUnico {
			t.Fatalf("registro singleton deveria manter id %d", IDUnico)
		}
	})
}

func TestSalvarConfiguracaoHTTP(t *testing.T) {
	t.Run("salvar espelha snapshot no cache", func(t *testing.T) {
		kv := cache.NovaMemoria()
		h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()), kv)

		corpo := `{"name":"Sow Brand","cnpj":"00.000.000/0001-00","address":"Rua Nova, 45","contact":"(11) 91111-2222","logoUrl":"","footerText":"rodapé"}`
		req := httptest.NewRequest(http.MethodPut, "/configuracoes", bytes.NewBufferString(corpo))
		w := httptest.NewRecorder()
		h.SalvarConfiguracao(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, veio %d: %s", w.Code, w.Body.String())
		}

		bruto, err := kv.Obter(req.Context(), "sow_settings")
		if err != nil {
			t.Fatalf("snapshot ausente: %v", err)
		}
		var c Configuracao
		if err := json.Unmarshal([]byte(bruto), &c); err != nil {
			t.Fatalf("snapshot inválido: %v", err)
		}
		if c.Endereco != "Rua Nova, 45" {
			t.Fatalf("snapshot divergente: %+v", c)
		}
	})

	t.Run("nome vazio responde 400", func(t *testing.T) {
		h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()), nil)
		req := httptest.NewRequest(http.MethodPut, "/configuracoes", bytes.NewBufferString(`{"name":""}`))
		w := httptest.NewRecorder()
		h.SalvarConfiguracao(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("esperado 400, veio %d", w.Code)
		}
	})

	t.Run("buscar sem nada salvo devolve o padrão", func(t *testing.T) {
		h := NewHandler(NewRepositoryLocal(cache.NovaMemoria()), nil)
		req := httptest.NewRequest(http.MethodGet, "/configuracoes", nil)
		w := httptest.NewRecorder()
		h.BuscarConfiguracao(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperado 200, veio %d", w.Code)
		}
		var c Configuracao
		if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
			t.Fatalf("resposta inválida: %v", err)
		}
		if c.Nome != "Sow Brand" {
			t.Fatalf("padrão de fábrica esperado, veio %+v", c)
		}
	})
}
