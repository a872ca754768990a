package producao

// Status de uma etapa de produção. Atrasado é marcado manualmente pelo
// operador; o sistema nunca deriva atraso das datas.
type Status string

const (
	StatusPendente    Status = "Pendente"
	StatusEmAndamento Status = "Em Andamento"
	StatusConcluido   Status = "Concluído"
	StatusAtrasado    Status = "Atrasado"
)

func (s Status) Valida() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluido, StatusAtrasado:
		return true
	}
	return false
}

// Valores-sentinela de fornecedor: trabalho feito internamente ou
// material entregue pelo próprio cliente.
const (
	FornecedorInterno = "Interno"
	FornecedorCliente = "Cliente"
)

// Etapa guarda o estado de uma disciplina de produção em um pedido.
// As datas são texto livre; nenhuma regra as interpreta.
type Etapa struct {
	Status       Status `json:"status"`
	FornecedorID string `json:"supplierId,omitempty"`
	DataEntrada  string `json:"dateIn,omitempty"`
	DataSaida    string `json:"dateOut,omitempty"`
}

// Campos editáveis de uma etapa.
const (
	CampoStatus     = "status"
	CampoFornecedor = "supplierId"
	CampoEntrada    = "dateIn"
	CampoSaida      = "dateOut"
)
