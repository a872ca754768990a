package fichatecnica

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/sowbrand/api-producao/internal/cache"
)

type Repository interface {
	Listar(ctx context.Context) ([]Ficha, error)
	BuscarPorID(ctx context.Context, id string) (*Ficha, error)
	Criar(ctx context.Context, f *Ficha) error
	Salvar(ctx context.Context, f *Ficha) error
	Deletar(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Listar(ctx context.Context) ([]Ficha, error) {
	var fichas []Ficha
	err := r.db.WithContext(ctx).Order("reference desc").Find(&fichas).Error
	return fichas, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Ficha, error) {
	var f Ficha
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Criar(ctx context.Context, f *Ficha) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repositoryImpl) Salvar(ctx context.Context, f *Ficha) error {
	var existente Ficha
	if err := r.db.WithContext(ctx).First(&existente, "id = ?", f.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repositoryImpl) Deletar(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Ficha{}, "id = ?", id).Error
}

const chaveLocal = "sow_techpacks"

type repositoryLocal struct {
	colecao *cache.Colecao[Ficha]
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{
		colecao: cache.NovaColecao(kv, chaveLocal, func(f Ficha) string { return f.ID }),
	}
}

func (r *repositoryLocal) Listar(ctx context.Context) ([]Ficha, error) {
	fichas, err := r.colecao.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(fichas, func(i, j int) bool { return fichas[i].Referencia > fichas[j].Referencia })
	return fichas, nil
}

func (r *repositoryLocal) BuscarPorID(ctx context.Context, id string) (*Ficha, error) {
	f, err := r.colecao.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryLocal) Criar(ctx context.Context, f *Ficha) error {
	return r.colecao.Inserir(ctx, *f)
}

func (r *repositoryLocal) Salvar(ctx context.Context, f *Ficha) error {
	return r.colecao.Substituir(ctx, *f)
}

func (r *repositoryLocal) Deletar(ctx context.Context, id string) error {
	return r.colecao.Remover(ctx, id)
}
