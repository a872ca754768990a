package producao

import (
	"errors"
	"testing"
)

func TestNovoPedido(t *testing.T) {
	t.Run("pedido válido nasce com oito etapas pendentes", func(t *testing.T) {
		p, err := NovoPedido("PED-1001", "c1", "Urban Style", "T-Shirt", 150, OrigemSowBrand)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if p.NomeCliente != "Urban Style" || p.Quantidade != 150 {
			t.Fatalf("dados do pedido incorretos: %+v", p)
		}
		if p.Revisao != 0 {
			t.Fatalf("revisão inicial deveria ser 0, veio %d", p.Revisao)
		}
		if p.Etapas != EtapasIniciais() {
			t.Fatalf("etapas deveriam começar todas pendentes")
		}
	})

	t.Run("produto vazio", func(t *testing.T) {
		_, err := NovoPedido("PED-1001", "c1", "Urban Style", "  ", 10, OrigemSowBrand)
		var ev *ErroValidacao
		if !errors.As(err, &ev) {
			t.Fatalf("esperado ErroValidacao, veio %v", err)
		}
	})

	t.Run("quantidade zero", func(t *testing.T) {
		_, err := NovoPedido("PED-1001", "c1", "Urban Style", "T-Shirt", 0, OrigemSowBrand)
		var ev *ErroValidacao
		if !errors.As(err, &ev) {
			t.Fatalf("esperado ErroValidacao, veio %v", err)
		}
	})

	t.Run("origem inválida", func(t *testing.T) {
		_, err := NovoPedido("PED-1001", "c1", "Urban Style", "T-Shirt", 10, "Terceirizada")
		var ev *ErroValidacao
		if !errors.As(err, &ev) {
			t.Fatalf("esperado ErroValidacao, veio %v", err)
		}
	})

	t.Run("cliente sem nome vira placeholder", func(t *testing.T) {
		p, err := NovoPedido("PED-1001", "c1", "", "T-Shirt", 10, OrigemCliente)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if p.NomeCliente != NomeClienteRemovido {
			t.Fatalf("esperado %q, veio %q", NomeClienteRemovido, p.NomeCliente)
		}
	})
}

func TestPedidoAtualizarEtapa(t *testing.T) {
	p, err := NovoPedido("PED-1001", "c1", "Urban Style", "T-Shirt", 150, OrigemSowBrand)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	atualizado, err := p.AtualizarEtapa(EtapaCorte, CampoStatus, string(StatusAtrasado))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	atualizado, err = atualizado.AtualizarEtapa(EtapaCostura, CampoFornecedor, "forn-103")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if atualizado.Etapas.Corte.Status != StatusAtrasado {
		t.Fatalf("corte deveria estar Atrasado")
	}
	if atualizado.Etapas.Costura.FornecedorID != "forn-103" {
		t.Fatalf("costura deveria apontar para forn-103")
	}
	if atualizado.Etapas.Costura.Status != StatusPendente {
		t.Fatalf("editar o fornecedor não pode tocar no status da costura")
	}
	if atualizado.Etapas.Corte.FornecedorID != "" {
		t.Fatalf("contaminação entre etapas: corte ganhou fornecedor")
	}
	if atualizado.Revisao != 2 {
		t.Fatalf("cada edição incrementa a revisão; esperado 2, veio %d", atualizado.Revisao)
	}

	// Campos do pedido fora do conjunto de etapas ficam intactos.
	if atualizado.Numero != p.Numero || atualizado.NomeCliente != p.NomeCliente ||
		atualizado.Quantidade != p.Quantidade || atualizado.OrigemModelagem != p.OrigemModelagem {
		t.Fatalf("edição de etapa alterou campos do pedido")
	}

	// O pedido do chamador permanece no estado anterior.
	if p.Etapas != EtapasIniciais() || p.Revisao != 0 {
		t.Fatalf("pedido original foi mutado")
	}
}
