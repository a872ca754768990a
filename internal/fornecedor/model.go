package fornecedor

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria é a disciplina de produção atendida pelo fornecedor.
type Categoria string

const (
	CategoriaMalha        Categoria = "Malha"
	CategoriaModelagem    Categoria = "Modelagem"
	CategoriaCorte        Categoria = "Corte"
	CategoriaCostura      Categoria = "Costura"
	CategoriaBordado      Categoria = "Bordado"
	CategoriaEstampaSilk  Categoria = "Estampa Silk"
	CategoriaImpressaoDTF Categoria = "Impressão DTF"
	CategoriaPrensaDTF    Categoria = "Prensa DTF"
	CategoriaAcabamento   Categoria = "Acabamento"
)

var categorias = []Categoria{
	CategoriaMalha,
	CategoriaModelagem,
	CategoriaCorte,
	CategoriaCostura,
	CategoriaBordado,
	CategoriaEstampaSilk,
	CategoriaImpressaoDTF,
	CategoriaPrensaDTF,
	CategoriaAcabamento,
}

func (c Categoria) Valida() bool {
	for _, v := range categorias {
		if c == v {
			return true
		}
	}
	return false
}

type Fornecedor struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Nome      string    `json:"name" gorm:"column:name;not null"`
	Categoria Categoria `json:"category" gorm:"column:category"`
	Contato   string    `json:"contact" gorm:"column:contact"`
	CriadoEm  time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Fornecedor) TableName() string { return "suppliers" }

func (f *Fornecedor) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
