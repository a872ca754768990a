package sequencia

import "context"

// Nomes das sequências numéricas do sistema.
const (
	NomePedido    = "pedido"
	NomeOrcamento = "orcamento"
	NomeFicha     = "ficha"
)

// SementePedido posiciona os números de pedido na faixa PED-1000+,
// a mesma faixa visual que os pedidos já emitidos ocupam.
const SementePedido = 1000

// Gerador entrega números monotônicos por nome, de propriedade da
// camada de persistência. Substitui a geração aleatória no cliente,
// que não garantia unicidade.
type Gerador interface {
	Proximo(ctx context.Context, nome string, semente int64) (int64, error)
}
