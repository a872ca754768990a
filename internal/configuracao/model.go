package configuracao

// Configuracao é o registro único (id 1) com os dados da empresa
// usados no cabeçalho e rodapé dos documentos impressos. O logo viaja
// como string opaca: URL ou imagem embutida em base64.
type Configuracao struct {
	ID          uint   `json:"id" gorm:"column:id;primaryKey"`
	Nome        string `json:"name" gorm:"column:name"`
	CNPJ        string `json:"cnpj" gorm:"column:cnpj"`
	Endereco    string `json:"address" gorm:"column:address"`
	Contato     string `json:"contact" gorm:"column:contact"`
	LogoURL     string `json:"logoUrl" gorm:"column:logo_url;type:text"`
	TextoRodape string `json:"footerText" gorm:"column:footer_text"`
}

func (Configuracao) TableName() string { return "company_settings" }

// IDUnico é o id do registro singleton.
const IDUnico = 1

// Padrao devolve os dados de fábrica da empresa.
func Padrao() Configuracao {
	return Configuracao{
		ID:          IDUnico,
		Nome:        "Sow Brand",
		CNPJ:        "00.000.000/0001-00",
		Endereco:    "Rua da Produção, 123 - Polo Têxtil",
		Contato:     "(11) 99999-9999",
		LogoURL:     "",
		TextoRodape: "Copyright © Sow Brand – Todos os direitos reservados.",
	}
}
