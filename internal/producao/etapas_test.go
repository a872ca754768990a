package producao

import (
	"encoding/json"
	"testing"
)

func TestEtapasIniciais(t *testing.T) {
	etapas := EtapasIniciais()

	for _, chave := range ChavesEtapas {
		e, err := etapas.Etapa(chave)
		if err != nil {
			t.Fatalf("etapa %s: %v", chave, err)
		}
		if e.Status != StatusPendente {
			t.Fatalf("etapa %s: esperado Pendente, veio %q", chave, e.Status)
		}
		if e.FornecedorID != "" || e.DataEntrada != "" || e.DataSaida != "" {
			t.Fatalf("etapa %s: campos deveriam começar vazios: %+v", chave, e)
		}
	}
}

func TestChavesEtapasEnderecamCamposDistintos(t *testing.T) {
	// Cada chave precisa apontar para um campo próprio da struct.
	for _, chave := range ChavesEtapas {
		etapas := EtapasIniciais()
		alterado, err := etapas.AtualizarCampo(chave, CampoEntrada, "01/02/2025")
		if err != nil {
			t.Fatalf("etapa %s: %v", chave, err)
		}
		for _, outra := range ChavesEtapas {
			e, _ := alterado.Etapa(outra)
			if outra == chave {
				if e.DataEntrada != "01/02/2025" {
					t.Fatalf("etapa %s não recebeu o valor", chave)
				}
				continue
			}
			if e.DataEntrada != "" {
				t.Fatalf("editar %s vazou para %s", chave, outra)
			}
		}
	}
}

func TestAtualizarCampoTrocaUmUnicoCampo(t *testing.T) {
	original := EtapasIniciais()
	alterado, err := original.AtualizarCampo(EtapaCorte, CampoStatus, string(StatusAtrasado))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	corte, _ := alterado.Etapa(EtapaCorte)
	if corte.Status != StatusAtrasado {
		t.Fatalf("esperado Atrasado, veio %q", corte.Status)
	}
	if corte.FornecedorID != "" || corte.DataEntrada != "" || corte.DataSaida != "" {
		t.Fatalf("outros campos da etapa foram alterados: %+v", corte)
	}

	// As demais sete etapas ficam byte a byte iguais.
	for _, chave := range ChavesEtapas {
		if chave == EtapaCorte {
			continue
		}
		antes, _ := original.Etapa(chave)
		depois, _ := alterado.Etapa(chave)
		if antes != depois {
			t.Fatalf("etapa %s mudou sem ser editada", chave)
		}
	}

	// A cópia do chamador nunca é alterada.
	corteOriginal, _ := original.Etapa(EtapaCorte)
	if corteOriginal.Status != StatusPendente {
		t.Fatalf("original foi mutado: %q", corteOriginal.Status)
	}
}

func TestTransicoesDeStatusSaoLivres(t *testing.T) {
	todos := []Status{StatusPendente, StatusEmAndamento, StatusConcluido, StatusAtrasado}
	for _, de := range todos {
		for _, para := range todos {
			etapas := EtapasIniciais()
			etapas, err := etapas.AtualizarCampo(EtapaCostura, CampoStatus, string(de))
			if err != nil {
				t.Fatalf("transição inicial para %q: %v", de, err)
			}
			etapas, err = etapas.AtualizarCampo(EtapaCostura, CampoStatus, string(para))
			if err != nil {
				t.Fatalf("transição %q -> %q deveria ser permitida: %v", de, para, err)
			}
			e, _ := etapas.Etapa(EtapaCostura)
			if e.Status != para {
				t.Fatalf("transição %q -> %q: status final %q", de, para, e.Status)
			}
		}
	}
}

func TestAtualizarCampoRejeitaEntradaInvalida(t *testing.T) {
	etapas := EtapasIniciais()

	t.Run("status fora do enum", func(t *testing.T) {
		if _, err := etapas.AtualizarCampo(EtapaCorte, CampoStatus, "Cancelado"); err == nil {
			t.Fatal("status inválido deveria ser rejeitado")
		}
	})

	t.Run("etapa desconhecida", func(t *testing.T) {
		if _, err := etapas.AtualizarCampo("lavanderia", CampoStatus, string(StatusPendente)); err == nil {
			t.Fatal("etapa desconhecida deveria ser rejeitada")
		}
	})

	t.Run("campo desconhecido", func(t *testing.T) {
		if _, err := etapas.AtualizarCampo(EtapaCorte, "prioridade", "alta"); err == nil {
			t.Fatal("campo desconhecido deveria ser rejeitado")
		}
	})
}

func TestEtapasSerializacaoIdaEVolta(t *testing.T) {
	etapas := EtapasIniciais()
	etapas, _ = etapas.AtualizarCampo(EtapaModelagem, CampoFornecedor, FornecedorInterno)
	etapas, _ = etapas.AtualizarCampo(EtapaModelagem, CampoStatus, string(StatusConcluido))
	etapas, _ = etapas.AtualizarCampo(EtapaDTFPrint, CampoEntrada, "10/10/2023")

	valor, err := etapas.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	// O blob carrega exatamente as oito chaves camelCase conhecidas.
	var bruto map[string]json.RawMessage
	if err := json.Unmarshal(valor.([]byte), &bruto); err != nil {
		t.Fatalf("blob inválido: %v", err)
	}
	if len(bruto) != len(ChavesEtapas) {
		t.Fatalf("esperadas %d chaves no blob, vieram %d", len(ChavesEtapas), len(bruto))
	}
	for _, chave := range ChavesEtapas {
		if _, ok := bruto[chave]; !ok {
			t.Fatalf("chave %q ausente do blob", chave)
		}
	}

	var lidas Etapas
	if err := lidas.Scan(valor); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if lidas != etapas {
		t.Fatalf("ida e volta alterou o conjunto: %+v != %+v", lidas, etapas)
	}
}

func TestEtapasScanNulo(t *testing.T) {
	var etapas Etapas
	if err := etapas.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if etapas != EtapasIniciais() {
		t.Fatalf("blob nulo deveria virar o estado inicial")
	}
}
