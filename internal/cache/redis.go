package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV struct {
	cliente *redis.Client
}

// ConectarRedis abre a conexão e valida com um ping antes de devolver o KV.
func ConectarRedis(url string) (KV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("REDIS_URL inválida: %w", err)
	}
	cliente := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cliente.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}
	return &redisKV{cliente: cliente}, nil
}

func (r *redisKV) Obter(ctx context.Context, chave string) (string, error) {
	v, err := r.cliente.Get(ctx, chave).Result()
	if err == redis.Nil {
		return "", ErrNaoEncontrado
	}
	return v, err
}

func (r *redisKV) Definir(ctx context.Context, chave, valor string) error {
	return r.cliente.Set(ctx, chave, valor, 0).Err()
}

func (r *redisKV) Remover(ctx context.Context, chave string) error {
	return r.cliente.Del(ctx, chave).Err()
}

func (r *redisKV) Incrementar(ctx context.Context, chave string, semente int64) (int64, error) {
	if err := r.cliente.SetNX(ctx, chave, semente, 0).Err(); err != nil {
		return 0, err
	}
	return r.cliente.Incr(ctx, chave).Result()
}
