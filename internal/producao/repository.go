package producao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrConflitoRevisao indica que outra sessão gravou o blob de etapas
// entre a leitura e a escrita. O conflito é detectado, nunca mesclado.
var ErrConflitoRevisao = errors.New("revisão do pedido desatualizada")

type Repository interface {
	Listar(ctx context.Context) ([]Pedido, error)
	BuscarPorID(ctx context.Context, id string) (*Pedido, error)
	Criar(ctx context.Context, p *Pedido) error
	// AtualizarEtapas grava o blob inteiro de etapas — o armazenamento
	// não tem patch de subdocumento — condicionado à revisão lida.
	AtualizarEtapas(ctx context.Context, id string, revisaoAnterior int64, etapas Etapas) error
	Deletar(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Listar devolve os pedidos em ordem decrescente de número, a ordem
// padrão do quadro de produção.
func (r *repositoryImpl) Listar(ctx context.Context) ([]Pedido, error) {
	var pedidos []Pedido
	err := r.db.WithContext(ctx).Order("order_number desc").Find(&pedidos).Error
	return pedidos, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Pedido, error) {
	var p Pedido
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Criar(ctx context.Context, p *Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repositoryImpl) AtualizarEtapas(ctx context.Context, id string, revisaoAnterior int64, etapas Etapas) error {
	res := r.db.WithContext(ctx).Model(&Pedido{}).
		Where("id = ? AND revision = ?", id, revisaoAnterior).
		Updates(map[string]interface{}{
			"stages":   etapas,
			"revision": revisaoAnterior + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Pode ser pedido inexistente ou revisão vencida; distingue
		// para o chamador responder 404 ou 409.
		var existe int64
		if err := r.db.WithContext(ctx).Model(&Pedido{}).Where("id = ?", id).Count(&existe).Error; err != nil {
			return err
		}
		if existe == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrConflitoRevisao
	}
	return nil
}

func (r *repositoryImpl) Deletar(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Pedido{}, "id = ?", id).Error
}
