package cliente

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/sowbrand/api-producao/internal/cache"
)

// Chave da coleção no modo sessão-local, herdada do aplicativo original.
const chaveLocal = "sow_clients"

type repositoryLocal struct {
	colecao *cache.Colecao[Cliente]
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{
		colecao: cache.NovaColecao(kv, chaveLocal, func(c Cliente) string { return c.ID }),
	}
}

func (r *repositoryLocal) Listar(ctx context.Context) ([]Cliente, error) {
	clientes, err := r.colecao.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(clientes, func(i, j int) bool { return clientes[i].Nome < clientes[j].Nome })
	return clientes, nil
}

func (r *repositoryLocal) BuscarPorID(ctx context.Context, id string) (*Cliente, error) {
	c, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryLocal) Criar(ctx context.Context, c *Cliente) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.colecao.Inserir(ctx, *c)
}

func (r *repositoryLocal) Atualizar(ctx context.Context, id string, novosDados *Cliente) error {
	existente, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Telefone = novosDados.Telefone
	existente.Email = novosDados.Email
	existente.Endereco = novosDados.Endereco
	existente.CNPJ = novosDados.CNPJ
	existente.Observacoes = novosDados.Observacoes

	return r.colecao.Substituir(ctx, existente)
}

func (r *repositoryLocal) Deletar(ctx context.Context, id string) error {
	return r.colecao.Remover(ctx, id)
}
