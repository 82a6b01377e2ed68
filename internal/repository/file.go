package repository

import (
	"context"
	"encoding/json"
	"os"

	"github.com/yourusername/streak-guardian/internal/models"
	"go.uber.org/zap"
)

// File persists the history record as a single JSON document, the way the
// job originally stored it. Missing and corrupt files are treated the same:
// an empty record. Serialization follows the struct field order, so repeated
// saves of the same record are byte-identical.
type File struct {
	path string
}

func NewFileStore(path string) *File {
	return &File{path: path}
}

func (s *File) Load(_ context.Context) *models.HistoryRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		zap.S().Info("no readable history file, starting fresh", zap.String("path", s.path), zap.Error(err))
		return NewEmptyRecord()
	}

	var record models.HistoryRecord
	if err := json.Unmarshal(data, &record); err != nil {
		zap.S().Warn("history file is corrupt, starting fresh", zap.String("path", s.path), zap.Error(err))
		return NewEmptyRecord()
	}

	if record.DailyEntries == nil {
		record.DailyEntries = []models.DailyEntry{}
	}

	return &record
}

func (s *File) Save(_ context.Context, record *models.HistoryRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &PersistError{Op: "marshal", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &PersistError{Op: "write file", Err: err}
	}

	return nil
}
