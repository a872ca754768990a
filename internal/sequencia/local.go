package sequencia

import (
	"context"

	"github.com/sowbrand/api-producao/internal/cache"
)

type geradorLocal struct {
	kv cache.KV
}

// NewGeradorLocal usa o incremento atômico do KV no modo local,
// sob a chave de sequência que o aplicativo original já usava.
func NewGeradorLocal(kv cache.KV) Gerador {
	return &geradorLocal{kv: kv}
}

func (g *geradorLocal) Proximo(ctx context.Context, nome string, semente int64) (int64, error) {
	return g.kv.Incrementar(ctx, "sow_seq_"+nome, semente)
}
