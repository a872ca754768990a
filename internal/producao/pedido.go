package producao

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Origem da modelagem da peça.
const (
	OrigemSowBrand = "Sow Brand"
	OrigemCliente  = "Cliente"
)

// NomeClienteRemovido é o nome desnormalizado usado quando o cliente
// do pedido não resolve mais (falha suave, não erro).
const NomeClienteRemovido = "Cliente Removido"

// ErroValidacao rejeita a entrada antes de qualquer chamada de
// persistência.
type ErroValidacao struct {
	Msg string
}

func (e *ErroValidacao) Error() string { return e.Msg }

// Pedido é o agregado de produção: identidade, referência
// desnormalizada do cliente e o conjunto fixo das oito etapas. As
// tags gorm fazem o mapeamento camelCase↔snake_case na fronteira do
// repositório; o JSON da API mantém os nomes camelCase.
type Pedido struct {
	ID              string    `json:"id" gorm:"column:id;primaryKey"`
	Numero          string    `json:"orderNumber" gorm:"column:order_number"`
	ClienteID       string    `json:"clientId" gorm:"column:client_id"`
	NomeCliente     string    `json:"clientName" gorm:"column:client_name"`
	Produto         string    `json:"product" gorm:"column:product"`
	Quantidade      int       `json:"quantity" gorm:"column:quantity"`
	OrigemModelagem string    `json:"modelingOrigin" gorm:"column:modeling_origin"`
	Revisao         int64     `json:"revision" gorm:"column:revision"`
	Etapas          Etapas    `json:"stages" gorm:"column:stages;type:jsonb"`
	CriadoEm        time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Pedido) TableName() string { return "production_orders" }

// NovoPedido constrói um pedido com as oito etapas em Pendente.
// Construção pura: persistir é responsabilidade do repositório.
func NovoPedido(numero, clienteID, nomeCliente, produto string, quantidade int, origem string) (*Pedido, error) {
	if strings.TrimSpace(produto) == "" {
		return nil, &ErroValidacao{Msg: "produto é obrigatório"}
	}
	if quantidade <= 0 {
		return nil, &ErroValidacao{Msg: "quantidade deve ser maior que zero"}
	}
	if origem != OrigemSowBrand && origem != OrigemCliente {
		return nil, &ErroValidacao{Msg: fmt.Sprintf("origem de modelagem inválida: %q", origem)}
	}
	if nomeCliente == "" {
		nomeCliente = NomeClienteRemovido
	}

	return &Pedido{
		ID:              uuid.NewString(),
		Numero:          numero,
		ClienteID:       clienteID,
		NomeCliente:     nomeCliente,
		Produto:         produto,
		Quantidade:      quantidade,
		OrigemModelagem: origem,
		Etapas:          EtapasIniciais(),
	}, nil
}

// AtualizarEtapa devolve uma cópia do pedido com um único campo de uma
// etapa trocado e a revisão incrementada. O pedido original fica
// intacto, o que mantém o rollback do chamador correto.
func (p Pedido) AtualizarEtapa(chave, campo, valor string) (Pedido, error) {
	etapas, err := p.Etapas.AtualizarCampo(chave, campo, valor)
	if err != nil {
		return Pedido{}, err
	}
	p.Etapas = etapas
	p.Revisao++
	return p, nil
}
