package gamestate

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const activeKey = "game:dice:active"

// Store guarda o estado administrativo vivo do jogo no Redis.
// O flag é lido uma vez por rodada e injetado no validador; o serviço de
// liquidação nunca lê estado global diretamente.
type Store struct {
	Rdb *redis.Client
}

func New(r *redis.Client) *Store { return &Store{Rdb: r} }

// Active informa se o jogo está aceitando apostas. Chave ausente = jogo
// desligado (estado inicial após o deploy).
func (s *Store) Active(ctx context.Context) (bool, error) {
	val, err := s.Rdb.Get(ctx, activeKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

// SetActive liga/desliga o jogo. Só os endpoints administrativos chamam.
func (s *Store) SetActive(ctx context.Context, on bool) error {
	val := "0"
	if on {
		val = "1"
	}
	return s.Rdb.Set(ctx, activeKey, val, 0).Err()
}
