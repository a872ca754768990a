package sequencia

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequencia é a linha de contador por nome.
type Sequencia struct {
	Nome  string `gorm:"column:nome;primaryKey"`
	Valor int64  `gorm:"column:valor"`
}

func (Sequencia) TableName() string { return "sequencias" }

type geradorPostgres struct {
	db *gorm.DB
}

func NewGerador(db *gorm.DB) Gerador {
	return &geradorPostgres{db: db}
}

// Proximo incrementa o contador dentro de uma transação, criando a
// linha na primeira chamada com o valor da semente.
func (g *geradorPostgres) Proximo(ctx context.Context, nome string, semente int64) (int64, error) {
	var valor int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq Sequencia
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("nome = ?", nome).First(&seq).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			seq = Sequencia{Nome: nome, Valor: semente}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
		}
		seq.Valor++
		if err := tx.Save(&seq).Error; err != nil {
			return err
		}
		valor = seq.Valor
		return nil
	})
	return valor, err
}
