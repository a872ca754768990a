package cache

import (
	"context"
	"errors"
)

// ErrNaoEncontrado indica ausência da chave no armazenamento.
var ErrNaoEncontrado = errors.New("chave não encontrada")

// KV é o contrato do armazenamento chave-valor usado pelo modo local
// e pelos snapshots de configuração. Espelha o contrato do
// armazenamento do navegador: get/set/remove sobre strings, mais um
// incremento atômico para as sequências numéricas.
type KV interface {
	Obter(ctx context.Context, chave string) (string, error)
	Definir(ctx context.Context, chave, valor string) error
	Remover(ctx context.Context, chave string) error
	Incrementar(ctx context.Context, chave string, semente int64) (int64, error)
}
