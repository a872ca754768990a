package cache

import (
	"context"
	"strconv"
	"sync"
)

// Memoria é um KV em processo, usado nos testes e como substituto do
// Redis em desenvolvimento.
type Memoria struct {
	mu    sync.Mutex
	dados map[string]string
}

func NovaMemoria() *Memoria {
	return &Memoria{dados: make(map[string]string)}
}

func (m *Memoria) Obter(_ context.Context, chave string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.dados[chave]
	if !ok {
		return "", ErrNaoEncontrado
	}
	return v, nil
}

func (m *Memoria) Definir(_ context.Context, chave, valor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dados[chave] = valor
	return nil
}

func (m *Memoria) Remover(_ context.Context, chave string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.dados, chave)
	return nil
}

func (m *Memoria) Incrementar(_ context.Context, chave string, semente int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	atual := semente
	if v, ok := m.dados[chave]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		atual = n
	}
	atual++
	m.dados[chave] = strconv.FormatInt(atual, 10)
	return atual, nil
}
