package orcamento

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
)

type Repository interface {
	Listar(ctx context.Context) ([]Orcamento, error)
	BuscarPorID(ctx context.Context, id string) (*Orcamento, error)
	Criar(ctx context.Context, o *Orcamento) error
	// Salvar regrava o documento inteiro; o editor trabalha no cliente
	// e manda o resultado completo.
	Salvar(ctx context.Context, o *Orcamento) error
	Deletar(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Listar(ctx context.Context) ([]Orcamento, error) {
	var orcamentos []Orcamento
	err := r.db.WithContext(ctx).Order("number desc").Find(&orcamentos).Error
	return orcamentos, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Orcamento, error) {
	var o Orcamento
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Criar(ctx context.Context, o *Orcamento) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repositoryImpl) Salvar(ctx context.Context, o *Orcamento) error {
	var existente Orcamento
	if err := r.db.WithContext(ctx).First(&existente, "id = ?", o.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repositoryImpl) Deletar(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Orcamento{}, "id = ?", id).Error
}

const chaveLocal = "sow_budgets"

type repositoryLocal struct {
	colecao *cache.Colecao[Orcamento]
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{
		colecao: cache.NovaColecao(kv, chaveLocal, func(o Orcamento) string { return o.ID }),
	}
}

func (r *repositoryLocal) Listar(ctx context.Context) ([]Orcamento, error) {
	orcamentos, err := r.colecao.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(orcamentos, func(i, j int) bool { return orcamentos[i].Numero > orcamentos[j].Numero })
	return orcamentos, nil
}

func (r *repositoryLocal) BuscarPorID(ctx context.Context, id string) (*Orcamento, error) {
	o, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryLocal) Criar(ctx context.Context, o *Orcamento) error {
	return r.colecao.Inserir(ctx, *o)
}

func (r *repositoryLocal) Salvar(ctx context.Context, o *Orcamento) error {
	return r.colecao.Substituir(ctx, *o)
}

func (r *repositoryLocal) Deletar(ctx context.Context, id string) error {
	return r.colecao.Remover(ctx, id)
}
