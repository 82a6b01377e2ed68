// Package engine turns (current streak snapshot, persisted history, now) into
// one delivered notification plus one history update. It runs once per
// invocation; scheduling and retry cadence belong to the external trigger.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/yourusername/streak-guardian/internal/engine/analytics"
	"github.com/yourusername/streak-guardian/internal/message"
	"github.com/yourusername/streak-guardian/internal/models"
	"github.com/yourusername/streak-guardian/internal/repository"
	"github.com/yourusername/streak-guardian/pkg/utils"
	"go.uber.org/zap"
)

// OverrideCurrent is the override value that falls through to the normal
// time-derived category resolution, exactly like an empty override.
const OverrideCurrent = "current"

type Engine struct {
	client   models.SnapshotClient
	store    models.HistoryStore
	notifier models.Notifier
	override string
	now      func() time.Time
}

func New(client models.SnapshotClient, store models.HistoryStore, notifier models.Notifier, override string) *Engine {
	return &Engine{
		client:   client,
		store:    store,
		notifier: notifier,
		override: override,
		now:      utils.NowUTC,
	}
}

// ResolveCategory maps the UTC hour and weekday of now to a time-slot
// category. A non-empty override other than "current" forces that category
// regardless of the clock.
func ResolveCategory(now time.Time, override string) models.TimeSlotCategory {
	if override != "" && override != OverrideCurrent {
		return models.TimeSlotCategory(override)
	}

	now = now.UTC()
	if now.Weekday() == time.Sunday && now.Hour() == 10 {
		return models.CategoryWeeklyReport
	}

	switch now.Hour() {
	case 7:
		return models.CategoryMorning
	case 12:
		return models.CategoryMidday
	case 16:
		return models.CategoryAfternoon
	case 21:
		return models.CategoryEvening
	case 23:
		return models.CategoryFinalWarning
	default:
		return models.CategoryGeneric
	}
}

// Run executes one full cycle: fetch, resolve, analyze, compose, deliver,
// persist. The first failing step aborts the run; the history only commits
// after the notification went out, so a failed run never records the day.
func (e *Engine) Run(ctx context.Context) error {
	now := e.now()

	snapshot, err := e.client.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	record := e.store.Load(ctx)
	category := ResolveCategory(now, e.override)
	zap.S().Info("resolved reminder category",
		zap.String("category", string(category)),
		zap.String("override", e.override),
		zap.Int("streak_days", snapshot.CurrentStreakDays))

	computed := analytics.Compute(snapshot, record, now)
	notification := message.Compose(category, computed, snapshot)

	if err := e.notifier.Send(ctx, notification); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	repository.Append(record, buildDailyEntry(snapshot, now), now)
	if err := e.store.Save(ctx, record); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	zap.S().Info("history updated", zap.Int("entries", len(record.DailyEntries)))

	return nil
}

// buildDailyEntry records the day the way it is reported: WPM to the nearest
// integer, accuracy to two decimal places.
func buildDailyEntry(snapshot *models.StreakSnapshot, now time.Time) models.DailyEntry {
	return models.DailyEntry{
		Date:            now.UTC().Format(models.DateFormat),
		StreakDays:      snapshot.CurrentStreakDays,
		AverageWPM:      math.Round(snapshot.AverageWPM),
		AverageAccuracy: math.Round(snapshot.AverageAccuracy*100) / 100,
		TotalTests:      snapshot.TotalTestsCompleted,
	}
}
