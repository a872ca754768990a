package fornecedor

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
)

type Repository interface {
	Listar(ctx context.Context) ([]Fornecedor, error)
	BuscarPorID(ctx context.Context, id string) (*Fornecedor, error)
	Criar(ctx context.Context, f *Fornecedor) error
	Atualizar(ctx context.Context, id string, novosDados *Fornecedor) error
	Deletar(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Listar(ctx context.Context) ([]Fornecedor, error) {
	var fornecedores []Fornecedor
	err := r.db.WithContext(ctx).Order("name asc").Find(&fornecedores).Error
	return fornecedores, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Fornecedor, error) {
	var f Fornecedor
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Criar(ctx context.Context, f *Fornecedor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repositoryImpl) Atualizar(ctx context.Context, id string, novosDados *Fornecedor) error {
	var existente Fornecedor
	if err := r.db.WithContext(ctx).First(&existente, "id = ?", id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Categoria = novosDados.Categoria
	existente.Contato = novosDados.Contato

	return r.db.WithContext(ctx).Save(&existente).Error
}

// Deletar não valida atribuições de etapa existentes: pedidos seguem
// apontando para o id antigo.
func (r *repositoryImpl) Deletar(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Fornecedor{}, "id = ?", id).Error
}

const chaveLocal = "sow_suppliers"

type repositoryLocal struct {
	colecao *cache.Colecao[Fornecedor]
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{
		colecao: cache.NovaColecao(kv, chaveLocal, func(f Fornecedor) string { return f.ID }),
	}
}

func (r *repositoryLocal) Listar(ctx context.Context) ([]Fornecedor, error) {
	fornecedores, err := r.colecao.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(fornecedores, func(i, j int) bool { return fornecedores[i].Nome < fornecedores[j].Nome })
	return fornecedores, nil
}

func (r *repositoryLocal) BuscarPorID(ctx context.Context, id string) (*Fornecedor, error) {
	f, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryLocal) Criar(ctx context.Context, f *Fornecedor) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return r.colecao.Inserir(ctx, *f)
}

func (r *repositoryLocal) Atualizar(ctx context.Context, id string, novosDados *Fornecedor) error {
	existente, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Categoria = novosDados.Categoria
	existente.Contato = novosDados.Contato

	return r.colecao.Substituir(ctx, existente)
}

func (r *repositoryLocal) Deletar(ctx context.Context, id string) error {
	return r.colecao.Remover(ctx, id)
}
