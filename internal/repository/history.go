package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/streak-guardian/internal/models"
	"go.uber.org/zap"
)

func (r *Postgres) Load(ctx context.Context) *models.HistoryRecord {
	query := `
		SELECT date, streak_days, avg_wpm, avg_acc, total_tests
		FROM streak_history
		ORDER BY date ASC
	`

	var entries []models.DailyEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		zap.S().Warn("load history from database, starting fresh", zap.Error(err))
		return NewEmptyRecord()
	}

	record := &models.HistoryRecord{DailyEntries: entries}
	if record.DailyEntries == nil {
		record.DailyEntries = []models.DailyEntry{}
	}

	var lastUpdated time.Time
	err := r.db.GetContext(ctx, &lastUpdated, `SELECT last_updated_at FROM history_meta WHERE id = 1`)
	if err == nil {
		record.LastUpdatedAt = &lastUpdated
	}

	return record
}

// Save replaces the stored history with the given record in one transaction,
// so a failed run never leaves a partially written history behind.
func (r *Postgres) Save(ctx context.Context, record *models.HistoryRecord) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return &PersistError{Op: "begin transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM streak_history`); err != nil {
		return &PersistError{Op: "clear history", Err: err}
	}

	if len(record.DailyEntries) > 0 {
		insert := r.psql.Insert("streak_history").
			Columns("date", "streak_days", "avg_wpm", "avg_acc", "total_tests")
		for _, entry := range record.DailyEntries {
			insert = insert.Values(entry.Date, entry.StreakDays, entry.AverageWPM, entry.AverageAccuracy, entry.TotalTests)
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return &PersistError{Op: "build insert query", Err: err}
		}

		if _, err := tx.ExecContext(ctx, sql, args...); err != nil {
			return &PersistError{Op: fmt.Sprintf("insert %d entries", len(record.DailyEntries)), Err: err}
		}
	}

	meta := `
		INSERT INTO history_meta (id, last_updated_at) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_updated_at = EXCLUDED.last_updated_at
	`
	if _, err := tx.ExecContext(ctx, meta, record.LastUpdatedAt); err != nil {
		return &PersistError{Op: "update meta", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &PersistError{Op: "commit", Err: err}
	}

	return nil
}
