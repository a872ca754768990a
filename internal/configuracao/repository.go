package configuracao

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sowbrand/api-producao/internal/cache"
)

// Chave do snapshot no cache, herdada do aplicativo original.
const chaveSnapshot = "sow_settings"

type Repository interface {
	// Carregar devolve o registro único, ou o padrão quando ainda não
	// houver configuração salva.
	Carregar(ctx context.Context) (Configuracao, error)
	// Salvar grava o registro único por inteiro. Última escrita vence:
	// não há trava nem verificação de versão para este registro.
	Salvar(ctx context.Context, c Configuracao) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Carregar(ctx context.Context) (Configuracao, error) {
	var c Configuracao
	err := r.db.WithContext(ctx).First(&c, "id = ?", IDUnico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Padrao(), nil
	}
	if err != nil {
		return Configuracao{}, err
	}
	return c, nil
}

func (r *repositoryImpl) Salvar(ctx context.Context, c Configuracao) error {
	c.ID = IDUnico
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&c).Error
}

type repositoryLocal struct {
	kv cache.KV
}

func NewRepositoryLocal(kv cache.KV) Repository {
	return &repositoryLocal{kv: kv}
}

func (r *repositoryLocal) Carregar(ctx context.Context) (Configuracao, error) {
	bruto, err := r.kv.Obter(ctx, chaveSnapshot)
	if errors.Is(err, cache.ErrNaoEncontrado) {
		return Padrao(), nil
	}
	if err != nil {
		return Configuracao{}, err
	}
	var c Configuracao
	if err := json.Unmarshal([]byte(bruto), &c); err != nil {
		return Configuracao{}, err
	}
	return c, nil
}

func (r *repositoryLocal) Salvar(ctx context.Context, c Configuracao) error {
	c.ID = IDUnico
	bruto, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.kv.Definir(ctx, chaveSnapshot, string(bruto))
}
