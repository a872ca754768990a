package producao

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Chaves das oito etapas fixas, na ordem de exibição do quadro.
const (
	EtapaModelagem  = "modelagem"
	EtapaCorte      = "corte"
	EtapaCostura    = "costura"
	EtapaBordado    = "bordado"
	EtapaSilk       = "silk"
	EtapaDTFPrint   = "dtfPrint"
	EtapaDTFPress   = "dtfPress"
	EtapaAcabamento = "acabamento"
)

// ChavesEtapas lista as oito etapas na ordem de exibição.
var ChavesEtapas = []string{
	EtapaModelagem,
	EtapaCorte,
	EtapaCostura,
	EtapaBordado,
	EtapaSilk,
	EtapaDTFPrint,
	EtapaDTFPress,
	EtapaAcabamento,
}

// Etapas é o conjunto fechado das oito disciplinas de um pedido. O
// tipo é uma struct de formato fixo, não um mapa: as oito etapas
// existem sempre, por construção. No banco o conjunto vira um blob
// jsonb com exatamente estas chaves.
type Etapas struct {
	Modelagem  Etapa `json:"modelagem"`
	Corte      Etapa `json:"corte"`
	Costura    Etapa `json:"costura"`
	Bordado    Etapa `json:"bordado"`
	Silk       Etapa `json:"silk"`
	DTFPrint   Etapa `json:"dtfPrint"`
	DTFPress   Etapa `json:"dtfPress"`
	Acabamento Etapa `json:"acabamento"`
}

// EtapasIniciais devolve as oito etapas em Pendente, sem fornecedor
// nem datas.
func EtapasIniciais() Etapas {
	inicial := Etapa{Status: StatusPendente}
	return Etapas{
		Modelagem:  inicial,
		Corte:      inicial,
		Costura:    inicial,
		Bordado:    inicial,
		Silk:       inicial,
		DTFPrint:   inicial,
		DTFPress:   inicial,
		Acabamento: inicial,
	}
}

var (
	ErrEtapaDesconhecida = fmt.Errorf("etapa desconhecida")
	ErrCampoDesconhecido = fmt.Errorf("campo de etapa desconhecido")
	ErrStatusInvalido    = fmt.Errorf("status inválido")
)

func (e *Etapas) etapa(chave string) (*Etapa, error) {
	switch chave {
	case EtapaModelagem:
		return &e.Modelagem, nil
	case EtapaCorte:
		return &e.Corte, nil
	case EtapaCostura:
		return &e.Costura, nil
	case EtapaBordado:
		return &e.Bordado, nil
	case EtapaSilk:
		return &e.Silk, nil
	case EtapaDTFPrint:
		return &e.DTFPrint, nil
	case EtapaDTFPress:
		return &e.DTFPress, nil
	case EtapaAcabamento:
		return &e.Acabamento, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEtapaDesconhecida, chave)
}

// Etapa devolve uma cópia da etapa pedida.
func (e Etapas) Etapa(chave string) (Etapa, error) {
	ptr, err := e.etapa(chave)
	if err != nil {
		return Etapa{}, err
	}
	return *ptr, nil
}

// AtualizarCampo devolve uma cópia do conjunto com exatamente um campo
// de uma etapa substituído. Qualquer transição de status é permitida,
// em qualquer direção; valores fora do enum são rejeitados antes de
// qualquer persistência. A cópia recebida pelo chamador nunca é
// alterada.
func (e Etapas) AtualizarCampo(chave, campo, valor string) (Etapas, error) {
	alvo, err := e.etapa(chave)
	if err != nil {
		return Etapas{}, err
	}

	switch campo {
	case CampoStatus:
		s := Status(valor)
		if !s.Valida() {
			return Etapas{}, fmt.Errorf("%w: %q", ErrStatusInvalido, valor)
		}
		alvo.Status = s
	case CampoFornecedor:
		alvo.FornecedorID = valor
	case CampoEntrada:
		alvo.DataEntrada = valor
	case CampoSaida:
		alvo.DataSaida = valor
	default:
		return Etapas{}, fmt.Errorf("%w: %q", ErrCampoDesconhecido, campo)
	}
	return e, nil
}

// Value serializa o conjunto para a coluna jsonb.
func (e Etapas) Value() (driver.Value, error) {
	return json.Marshal(e)
}

// Scan lê o blob jsonb de volta para o formato fixo.
func (e *Etapas) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	case nil:
		*e = EtapasIniciais()
		return nil
	}
	return fmt.Errorf("tipo inesperado para etapas: %T", src)
}
