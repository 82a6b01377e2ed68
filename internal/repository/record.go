package repository

import (
	"fmt"
	"time"

	"github.com/yourusername/streak-guardian/internal/models"
)

// maxHistoryDays bounds the rolling history; older entries are dropped first.
const maxHistoryDays = 90

// PersistError reports a failed history write.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist history (%s): %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// NewEmptyRecord returns the record used when no prior history exists.
func NewEmptyRecord() *models.HistoryRecord {
	return &models.HistoryRecord{DailyEntries: []models.DailyEntry{}}
}

// Append adds entry to the record unless the most recent entry already
// carries the same date, making repeated same-day runs a no-op. The record
// is then truncated to the newest entries and stamped.
func Append(record *models.HistoryRecord, entry models.DailyEntry, now time.Time) {
	entries := record.DailyEntries
	if len(entries) == 0 || entries[len(entries)-1].Date != entry.Date {
		entries = append(entries, entry)
	}

	if len(entries) > maxHistoryDays {
		entries = entries[len(entries)-maxHistoryDays:]
	}

	record.DailyEntries = entries
	record.LastUpdatedAt = &now
}
