package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/config"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
)

// Store persiste a agenda inteira como um único documento. Todas as
// operações do serviço carregam a coleção completa, mutam em memória e
// regravam tudo; nenhum backend faz leitura ou escrita parcial.
type Store interface {
	// EnsureInitialized cria o documento vazio se ele ainda não existe.
	// Chamado uma vez na subida do processo.
	EnsureInitialized(ctx context.Context) error

	// Load lê a coleção persistida. Nunca propaga falha de leitura:
	// documento ausente, ilegível ou corrompido vira agenda vazia, com
	// warning no log (política fail-open).
	Load(ctx context.Context) models.Agenda

	// Save regrava o documento inteiro com a coleção dada.
	Save(ctx context.Context, agenda models.Agenda) error
}

// New escolhe o backend pelo config.
func New(cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileStore(cfg.DataFile, log), nil
	case "redis":
		return NewRedisStore(cfg, log), nil
	case "s3":
		return NewS3Store(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
