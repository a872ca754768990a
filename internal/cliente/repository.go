package cliente

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Listar(ctx context.Context) ([]Cliente, error)
	BuscarPorID(ctx context.Context, id string) (*Cliente, error)
	Criar(ctx context.Context, c *Cliente) error
	Atualizar(ctx context.Context, id string, novosDados *Cliente) error
	Deletar(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Lista em ordem alfabética, a ordem padrão da tela de clientes.
func (r *repositoryImpl) Listar(ctx context.Context) ([]Cliente, error) {
	var clientes []Cliente
	err := r.db.WithContext(ctx).Order("name asc").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Cliente, error) {
	var c Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Criar(ctx context.Context, c *Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repositoryImpl) Atualizar(ctx context.Context, id string, novosDados *Cliente) error {
	var existente Cliente
	if err := r.db.WithContext(ctx).First(&existente, "id = ?", id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Telefone = novosDados.Telefone
	existente.Email = novosDados.Email
	existente.Endereco = novosDados.Endereco
	existente.CNPJ = novosDados.CNPJ
	existente.Observacoes = novosDados.Observacoes

	return r.db.WithContext(ctx).Save(&existente).Error
}

// Deletar não tem efeito em cascata: pedidos existentes mantêm o nome
// desnormalizado do cliente.
func (r *repositoryImpl) Deletar(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Cliente{}, "id = ?", id).Error
}
