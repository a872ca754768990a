package cache

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrRegistroNaoEncontrado indica id ausente dentro de uma coleção.
var ErrRegistroNaoEncontrado = errors.New("registro não encontrado")

// Colecao guarda uma lista de registros como um único documento JSON
// sob uma chave do KV, do mesmo jeito que o modo sessão-local do
// aplicativo original guardava cada coleção.
type Colecao[T any] struct {
	kv    KV
	chave string
	id    func(T) string
}

func NovaColecao[T any](kv KV, chave string, id func(T) string) *Colecao[T] {
	return &Colecao[T]{kv: kv, chave: chave, id: id}
}

func (c *Colecao[T]) Listar(ctx context.Context) ([]T, error) {
	bruto, err := c.kv.Obter(ctx, c.chave)
	if errors.Is(err, ErrNaoEncontrado) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var itens []T
	if err := json.Unmarshal([]byte(bruto), &itens); err != nil {
		return nil, err
	}
	return itens, nil
}

func (c *Colecao[T]) Buscar(ctx context.Context, id string) (T, error) {
	var zero T
	itens, err := c.Listar(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range itens {
		if c.id(item) == id {
			return item, nil
		}
	}
	return zero, ErrRegistroNaoEncontrado
}

func (c *Colecao[T]) Inserir(ctx context.Context, item T) error {
	itens, err := c.Listar(ctx)
	if err != nil {
		return err
	}
	return c.gravar(ctx, append(itens, item))
}

func (c *Colecao[T]) Substituir(ctx context.Context, item T) error {
	itens, err := c.Listar(ctx)
	if err != nil {
		return err
	}
	for i := range itens {
		if c.id(itens[i]) == c.id(item) {
			itens[i] = item
			return c.gravar(ctx, itens)
		}
	}
	return ErrRegistroNaoEncontrado
}

func (c *Colecao[T]) Remover(ctx context.Context, id string) error {
	itens, err := c.Listar(ctx)
	if err != nil {
		return err
	}
	filtrados := itens[:0]
	for _, item := range itens {
		if c.id(item) != id {
			filtrados = append(filtrados, item)
		}
	}
	return c.gravar(ctx, filtrados)
}

func (c *Colecao[T]) gravar(ctx context.Context, itens []T) error {
	bruto, err := json.Marshal(itens)
	if err != nil {
		return err
	}
	return c.kv.Definir(ctx, c.chave, string(bruto))
}
