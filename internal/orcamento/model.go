package orcamento

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Servico é uma linha da tabela comercial fixa de serviços.
type Servico struct {
	Rotulo        string
	SKU           string
	PrecoUnitario float64
}

// TabelaServicos é a tabela comercial vigente.
var TabelaServicos = []Servico{
	{Rotulo: "Desenvolvimento de Marca", SKU: "DESMAR", PrecoUnitario: 1500},
	{Rotulo: "Private Label", SKU: "PRILAB", PrecoUnitario: 0},
	{Rotulo: "Personalização", SKU: "PER", PrecoUnitario: 50},
	{Rotulo: "Consultoria", SKU: "CON", PrecoUnitario: 300},
	{Rotulo: "Mentoria", SKU: "MEN", PrecoUnitario: 500},
}

func servicoPorRotulo(rotulo string) (Servico, bool) {
	for _, s := range TabelaServicos {
		if s.Rotulo == rotulo {
			return s, true
		}
	}
	return Servico{}, false
}

type Item struct {
	ID            string  `json:"id"`
	Tipo          string  `json:"type"`
	SKU           string  `json:"sku"`
	Quantidade    int     `json:"quantity"`
	PrecoUnitario float64 `json:"unitPrice"`
}

// Itens é a lista de linhas do orçamento, persistida como blob jsonb.
type Itens []Item

func (i Itens) Value() (driver.Value, error) {
	if i == nil {
		i = Itens{}
	}
	return json.Marshal(i)
}

func (i *Itens) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = Itens{}
		return nil
	}
	return fmt.Errorf("tipo inesperado para itens: %T", src)
}

// Orcamento é o documento de proposta comercial. Vive como documento
// inteiro: a edição acontece no cliente e o salvamento regrava tudo.
type Orcamento struct {
	ID              string    `json:"id" gorm:"column:id;primaryKey"`
	Numero          int64     `json:"number" gorm:"column:number"`
	Ano             int       `json:"year" gorm:"column:year"`
	NomeCliente     string    `json:"clientName" gorm:"column:client_name"`
	EnderecoCliente string    `json:"clientAddress" gorm:"column:client_address"`
	ContatoCliente  string    `json:"clientContact" gorm:"column:client_contact"`
	Data            string    `json:"date" gorm:"column:date"`
	DataEntrega     string    `json:"deliveryDate" gorm:"column:delivery_date"`
	Itens           Itens     `json:"items" gorm:"column:items;type:jsonb"`
	Observacoes     string    `json:"observations" gorm:"column:observations"`
	CriadoEm        time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Orcamento) TableName() string { return "budget_proposals" }

// PrazoEntrega é o prazo padrão proposto ao cliente.
const PrazoEntrega = 45 * 24 * time.Hour

// Novo monta um rascunho numerado com data de hoje e entrega prevista
// no prazo padrão.
func Novo(numero int64, agora time.Time) Orcamento {
	return Orcamento{
		ID:          uuid.NewString(),
		Numero:      numero,
		Ano:         agora.Year(),
		Data:        agora.Format("02/01/2006"),
		DataEntrega: agora.Add(PrazoEntrega).Format("02/01/2006"),
		Itens:       Itens{},
	}
}

// AdicionarItem acrescenta uma linha Private Label em branco, o mesmo
// padrão de linha nova do editor.
func (o Orcamento) AdicionarItem() Orcamento {
	s, _ := servicoPorRotulo("Private Label")
	itens := make(Itens, len(o.Itens), len(o.Itens)+1)
	copy(itens, o.Itens)
	o.Itens = append(itens, Item{
		ID:            uuid.NewString(),
		Tipo:          s.Rotulo,
		SKU:           s.SKU,
		Quantidade:    1,
		PrecoUnitario: s.PrecoUnitario,
	})
	return o
}

// Campos editáveis de uma linha do orçamento.
const (
	CampoTipo       = "type"
	CampoQuantidade = "quantity"
	CampoPreco      = "unitPrice"
)

var ErrItemNaoEncontrado = fmt.Errorf("item não encontrado")

// AtualizarItem devolve uma cópia com um campo de uma linha trocado.
// Trocar o tipo re-resolve SKU e preço pela tabela de serviços.
func (o Orcamento) AtualizarItem(id, campo string, valor interface{}) (Orcamento, error) {
	itens := make(Itens, len(o.Itens))
	copy(itens, o.Itens)

	for i := range itens {
		if itens[i].ID != id {
			continue
		}
		switch campo {
		case CampoTipo:
			rotulo, ok := valor.(string)
			if !ok {
				return Orcamento{}, fmt.Errorf("tipo de serviço inválido")
			}
			itens[i].Tipo = rotulo
			if s, ok := servicoPorRotulo(rotulo); ok {
				itens[i].SKU = s.SKU
				itens[i].PrecoUnitario = s.PrecoUnitario
			} else {
				itens[i].SKU = ""
				itens[i].PrecoUnitario = 0
			}
		case CampoQuantidade:
			q, ok := valor.(int)
			if !ok || q < 0 {
				return Orcamento{}, fmt.Errorf("quantidade inválida")
			}
			itens[i].Quantidade = q
		case CampoPreco:
			p, ok := valor.(float64)
			if !ok || p < 0 {
				return Orcamento{}, fmt.Errorf("preço inválido")
			}
			itens[i].PrecoUnitario = p
		default:
			return Orcamento{}, fmt.Errorf("campo de item desconhecido: %q", campo)
		}
		o.Itens = itens
		return o, nil
	}
	return Orcamento{}, fmt.Errorf("%w: %q", ErrItemNaoEncontrado, id)
}

// RemoverItem devolve uma cópia sem a linha indicada.
func (o Orcamento) RemoverItem(id string) Orcamento {
	itens := make(Itens, 0, len(o.Itens))
	for _, item := range o.Itens {
		if item.ID != id {
			itens = append(itens, item)
		}
	}
	o.Itens = itens
	return o
}

// Total soma quantidade × preço unitário de todas as linhas.
func (o Orcamento) Total() float64 {
	var total float64
	for _, item := range o.Itens {
		total += float64(item.Quantidade) * item.PrecoUnitario
	}
	return total
}
