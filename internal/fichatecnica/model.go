package fichatecnica

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Técnicas de estampa aceitas na página de estamparia.
const (
	TecnicaSilk       = "Silk"
	TecnicaDTF        = "DTF"
	TecnicaSublimacao = "Sublimação"
	TecnicaBordado    = "Bordado"
)

func TecnicaValida(t string) bool {
	switch t {
	case TecnicaSilk, TecnicaDTF, TecnicaSublimacao, TecnicaBordado:
		return true
	}
	return false
}

// Medida é uma linha da tabela de medidas: ponto de medição,
// tolerância e valor por tamanho.
type Medida struct {
	ID            string            `json:"id"`
	PontoDeMedida string            `json:"pointOfMeasure"`
	Tolerancia    string            `json:"tol"`
	Tamanhos      map[string]string `json:"sizes"`
}

// ItemBOM é uma linha da lista de materiais.
type ItemBOM struct {
	ID         string `json:"id"`
	Componente string `json:"component"`
	Descricao  string `json:"description"`
	Fornecedor string `json:"supplier"`
	Consumo    string `json:"consumption"`
	Custo      string `json:"cost"`
}

// ConfigDTF são os parâmetros de prensa quando a técnica é DTF.
type ConfigDTF struct {
	Temperatura string `json:"temperature"`
	Tempo       string `json:"time"`
	Pressao     string `json:"pressure"`
	Peeling     string `json:"peeling"`
}

// Tipos de coluna jsonb do documento.
type (
	ListaTexto []string
	Medidas    []Medida
	ItensBOM   []ItemBOM
)

func jsonValor(v interface{}) (driver.Value, error) { return json.Marshal(v) }

func jsonScan(dst interface{}, src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	}
	return fmt.Errorf("tipo inesperado para coluna json: %T", src)
}

func (l ListaTexto) Value() (driver.Value, error) {
	if l == nil {
		l = ListaTexto{}
	}
	return jsonValor(l)
}
func (l *ListaTexto) Scan(src interface{}) error { return jsonScan(l, src) }

func (m Medidas) Value() (driver.Value, error) {
	if m == nil {
		m = Medidas{}
	}
	return jsonValor(m)
}
func (m *Medidas) Scan(src interface{}) error { return jsonScan(m, src) }

func (i ItensBOM) Value() (driver.Value, error) {
	if i == nil {
		i = ItensBOM{}
	}
	return jsonValor(i)
}
func (i *ItensBOM) Scan(src interface{}) error { return jsonScan(i, src) }

func (c ConfigDTF) Value() (driver.Value, error) { return jsonValor(c) }
func (c *ConfigDTF) Scan(src interface{}) error  { return jsonScan(c, src) }

// Ficha é a ficha técnica de várias páginas enviada aos parceiros de
// manufatura. As imagens viajam como strings opacas (URL ou base64).
type Ficha struct {
	ID            string `json:"id" gorm:"column:id;primaryKey"`
	Referencia    string `json:"reference" gorm:"column:reference"`
	Colecao       string `json:"collection" gorm:"column:collection"`
	Produto       string `json:"product" gorm:"column:product"`
	Estacao       string `json:"season" gorm:"column:season"`
	TamanhoPiloto string `json:"sampleSize" gorm:"column:sample_size"`

	ImagemFrente     string `json:"frontImage" gorm:"column:front_image;type:text"`
	ImagemCostas     string `json:"backImage" gorm:"column:back_image;type:text"`
	ComposicaoTecido string `json:"fabricComposition" gorm:"column:fabric_composition"`

	GradeTamanhos ListaTexto `json:"sizeRange" gorm:"column:size_range;type:jsonb"`
	Medidas       Medidas    `json:"measurements" gorm:"column:measurements;type:jsonb"`

	Maquinario            ListaTexto `json:"machinery" gorm:"column:machinery;type:jsonb"`
	DetalhesCostura       string     `json:"stitchingDetails" gorm:"column:stitching_details"`
	ComentariosConstrucao string     `json:"constructionComments" gorm:"column:construction_comments"`

	TecnicaEstampa string    `json:"printTechnique" gorm:"column:print_technique"`
	ConfigDTF      ConfigDTF `json:"dtfSettings" gorm:"column:dtf_settings;type:jsonb"`
	CoresEstampa   string    `json:"printColors" gorm:"column:print_colors"`
	PosicaoEstampa string    `json:"printPosition" gorm:"column:print_position"`

	BOM ItensBOM `json:"bom" gorm:"column:bom;type:jsonb"`

	CriadoEm time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

func (Ficha) TableName() string { return "tech_packs" }

// Nova monta uma ficha a partir do modelo padrão da casa, numerada
// como REF-ANO-NNN.
func Nova(numero int64, agora time.Time) Ficha {
	return Ficha{
		ID:            uuid.NewString(),
		Referencia:    fmt.Sprintf("REF-%d-%03d", agora.Year(), numero),
		Colecao:       "Verão " + fmt.Sprint(agora.Year()),
		Produto:       "T-Shirt Basic Heavy",
		Estacao:       "Alto Verão",
		TamanhoPiloto: "M",

		ComposicaoTecido: "100% Algodão 260g/m²",

		GradeTamanhos: ListaTexto{"P", "M", "G", "GG"},
		Medidas: Medidas{
			{ID: uuid.NewString(), PontoDeMedida: "Largura do Torax", Tolerancia: "1", Tamanhos: map[string]string{"P": "50", "M": "52", "G": "54", "GG": "56"}},
			{ID: uuid.NewString(), PontoDeMedida: "Comprimento Total", Tolerancia: "1", Tamanhos: map[string]string{"P": "70", "M": "72", "G": "74", "GG": "76"}},
		},

		Maquinario:            ListaTexto{"Reta", "Overlock"},
		DetalhesCostura:       "Bainha de 2cm na barra e mangas. Reforço de ombro a ombro.",
		ComentariosConstrucao: "Utilizar agulha fina para não furar a malha.",

		TecnicaEstampa: TecnicaDTF,
		ConfigDTF:      ConfigDTF{Temperatura: "160ºC", Tempo: "15s", Pressao: "Média/Alta", Peeling: "Frio"},
		CoresEstampa:   "CMYK",
		PosicaoEstampa: "Centro Frente - 10cm da gola",

		BOM: ItensBOM{
			{ID: uuid.NewString(), Componente: "Tecido Principal", Descricao: "Malha Menegotti", Fornecedor: "Menegotti", Consumo: "0.45 kg", Custo: "R$ 25,00"},
			{ID: uuid.NewString(), Componente: "Etiqueta Nuca", Descricao: "Estampada", Fornecedor: "Haco", Consumo: "1 un", Custo: "R$ 0,50"},
		},
	}
}

// AdicionarMedida acrescenta uma linha em branco cobrindo a grade atual.
func (f Ficha) AdicionarMedida() Ficha {
	tamanhos := make(map[string]string, len(f.GradeTamanhos))
	for _, t := range f.GradeTamanhos {
		tamanhos[t] = ""
	}
	medidas := make(Medidas, len(f.Medidas), len(f.Medidas)+1)
	copy(medidas, f.Medidas)
	f.Medidas = append(medidas, Medida{
		ID:            uuid.NewString(),
		PontoDeMedida: "Nova Medida",
		Tolerancia:    "0.5",
		Tamanhos:      tamanhos,
	})
	return f
}

// RemoverMedida devolve uma cópia sem a linha indicada.
func (f Ficha) RemoverMedida(id string) Ficha {
	medidas := make(Medidas, 0, len(f.Medidas))
	for _, m := range f.Medidas {
		if m.ID != id {
			medidas = append(medidas, m)
		}
	}
	f.Medidas = medidas
	return f
}

// AdicionarItemBOM acrescenta uma linha em branco na lista de materiais.
func (f Ficha) AdicionarItemBOM() Ficha {
	bom := make(ItensBOM, len(f.BOM), len(f.BOM)+1)
	copy(bom, f.BOM)
	f.BOM = append(bom, ItemBOM{ID: uuid.NewString()})
	return f
}

// RemoverItemBOM devolve uma cópia sem a linha indicada.
func (f Ficha) RemoverItemBOM(id string) Ficha {
	bom := make(ItensBOM, 0, len(f.BOM))
	for _, item := range f.BOM {
		if item.ID != id {
			bom = append(bom, item)
		}
	}
	f.BOM = bom
	return f
}
