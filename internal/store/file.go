package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
)

// FileStore guarda a agenda num único arquivo JSON legível (indentado).
type FileStore struct {
	path string
	log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) EnsureInitialized(_ context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	// O documento vazio só é criado quando o arquivo não existe; outra
	// falha de stat sobe para o caller em vez de disparar uma regravação.
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.write(models.Agenda{Appointments: []models.Appointment{}})
}

func (s *FileStore) Load(_ context.Context) models.Agenda {
	empty := models.Agenda{Appointments: []models.Appointment{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("agenda file unreadable, serving empty collection",
			zap.String("path", s.path), zap.Error(err))
		return empty
	}

	var agenda models.Agenda
	if err := json.Unmarshal(data, &agenda); err != nil {
		s.log.Warn("agenda file malformed, serving empty collection",
			zap.String("path", s.path), zap.Error(err))
		return empty
	}

	if agenda.Appointments == nil {
		agenda.Appointments = []models.Appointment{}
	}
	return agenda
}

func (s *FileStore) Save(_ context.Context, agenda models.Agenda) error {
	return s.write(agenda)
}

// write grava via arquivo temporário + rename no mesmo diretório, para
// que um crash no meio da escrita nunca deixe o documento truncado.
func (s *FileStore) write(agenda models.Agenda) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(agenda, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".agenda-*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
