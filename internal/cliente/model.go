package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cliente struct {
	ID          string    `json:"id" gorm:"column:id;primaryKey"`
	Nome        string    `json:"name" gorm:"column:name;not null"`
	Telefone    string    `json:"phone" gorm:"column:phone"`
	Email       string    `json:"email" gorm:"column:email"`
	Endereco    string    `json:"address" gorm:"column:address"`
	CNPJ        string    `json:"cnpj" gorm:"column:cnpj"`
	Observacoes string    `json:"observations" gorm:"column:observations"`
	CriadoEm    time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Cliente) TableName() string { return "clients" }

func (c *Cliente) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
