package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/config"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
)

// RedisStore guarda o documento inteiro da agenda sob uma única chave.
// GET/SET do valor completo preserva o contrato load/save do FileStore.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

func NewRedisStore(cfg *config.Config, log *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisStore{
		client: client,
		key:    cfg.RedisKey,
		log:    log,
	}
}

func (s *RedisStore) EnsureInitialized(ctx context.Context) error {
	data, err := json.Marshal(models.Agenda{Appointments: []models.Appointment{}})
	if err != nil {
		return err
	}
	// SETNX: só grava o documento vazio se a chave ainda não existe.
	return s.client.SetNX(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context) models.Agenda {
	empty := models.Agenda{Appointments: []models.Appointment{}}

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("agenda key unreadable, serving empty collection",
				zap.String("key", s.key), zap.Error(err))
		}
		return empty
	}

	var agenda models.Agenda
	if err := json.Unmarshal(data, &agenda); err != nil {
		s.log.Warn("agenda key malformed, serving empty collection",
			zap.String("key", s.key), zap.Error(err))
		return empty
	}

	if agenda.Appointments == nil {
		agenda.Appointments = []models.Appointment{}
	}
	return agenda
}

func (s *RedisStore) Save(ctx context.Context, agenda models.Agenda) error {
	data, err := json.Marshal(agenda)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}
