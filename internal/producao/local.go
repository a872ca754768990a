package producao

import (
	"context"
	"sort"

	"github.com/sowbrand/api-producao/internal/cache"
)

const chaveLocal = "sow_orders"

type repositoryLocal struct {
	colecao *cache.Colecao[Pedido]
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{
		colecao: cache.NovaColecao(kv, chaveLocal, func(p Pedido) string { return p.ID }),
	}
}

func (r *repositoryLocal) Listar(ctx context.Context) ([]Pedido, error) {
	pedidos, err := r.colecao.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(pedidos, func(i, j int) bool { return pedidos[i].Numero > pedidos[j].Numero })
	return pedidos, nil
}

func (r *repositoryLocal) BuscarPorID(ctx context.Context, id string) (*Pedido, error) {
	p, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryLocal) Criar(ctx context.Context, p *Pedido) error {
	return r.colecao.Inserir(ctx, *p)
}

func (r *repositoryLocal) AtualizarEtapas(ctx context.Context, id string, revisaoAnterior int64, etapas Etapas) error {
	p, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return err
	}
	if p.Revisao != revisaoAnterior {
		return ErrConflitoRevisao
	}
	p.Etapas = etapas
	p.Revisao = revisaoAnterior + 1
	return r.colecao.Substituir(ctx, p)
}

func (r *repositoryLocal) Deletar(ctx context.Context, id string) error {
	return r.colecao.Remover(ctx, id)
}
