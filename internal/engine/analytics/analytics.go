package analytics

import (
	"time"

	"github.com/yourusername/streak-guardian/internal/models"
	"github.com/yourusername/streak-guardian/pkg/utils"
)

// Streak lengths that merit a celebratory banner.
var milestones = []int{10, 25, 50, 100, 200, 365, 500, 1000}

const (
	lowRiskHours    = 12
	mediumRiskHours = 20

	trendWindow        = 7
	improvingThreshold = 1.10
	decliningThreshold = 0.90
)

// WeeklyStats aggregates the entries that fall inside the trailing 7-day
// window.
type WeeklyStats struct {
	DaysPracticed   int
	AverageWPM      float64
	AverageAccuracy float64
}

// Compute derives the full per-run analytics from the snapshot and the
// persisted history. Pure: same inputs always produce the same result.
func Compute(snapshot *models.StreakSnapshot, record *models.HistoryRecord, now time.Time) models.Analytics {
	weekly := WeeklyStatsFor(record, now)

	return models.Analytics{
		LongestStreakDays:      LongestStreak(record, snapshot.CurrentStreakDays),
		Trend:                  StreakTrend(record),
		Risk:                   Risk(snapshot.LastPracticedAt, now),
		DaysUntilNextMilestone: DaysUntilNextMilestone(snapshot.CurrentStreakDays),
		IsMilestone:            IsMilestone(snapshot.CurrentStreakDays),
		HasPracticedToday:      HasPracticedToday(snapshot, now),
		WeeklyDaysPracticed:    weekly.DaysPracticed,
		WeeklyAverageWPM:       weekly.AverageWPM,
		WeeklyAverageAccuracy:  weekly.AverageAccuracy,
	}
}

// HasPracticedToday reports whether the last practice falls on the same UTC
// calendar day as now. A snapshot without a last-practice time counts as not
// practiced.
func HasPracticedToday(snapshot *models.StreakSnapshot, now time.Time) bool {
	if snapshot.LastPracticedAt == nil {
		return false
	}

	return utils.DatesEqual(snapshot.LastPracticedAt.UTC(), now.UTC())
}

// LongestStreak returns the maximum streak ever observed: the historical
// maximum or the current streak, whichever is larger.
func LongestStreak(record *models.HistoryRecord, currentStreak int) int {
	longest := currentStreak
	for _, entry := range record.DailyEntries {
		if entry.StreakDays > longest {
			longest = entry.StreakDays
		}
	}

	return longest
}

// Risk maps the hours elapsed since the last practice to a risk level:
// <12h → low, <20h → medium, otherwise (or never practiced) → high.
func Risk(lastPracticedAt *time.Time, now time.Time) models.RiskLevel {
	if lastPracticedAt == nil {
		return models.RiskHigh
	}

	hoursSince := now.Sub(*lastPracticedAt).Hours()
	switch {
	case hoursSince < lowRiskHours:
		return models.RiskLow
	case hoursSince < mediumRiskHours:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// StreakTrend compares the mean streak of the most recent 7 entries against
// the mean of the 7 before them. Fewer than 7 entries, or an empty older
// window, is stable by definition.
func StreakTrend(record *models.HistoryRecord) models.Trend {
	entries := record.DailyEntries
	if len(entries) < trendWindow {
		return models.TrendStable
	}

	recent := entries[len(entries)-trendWindow:]

	olderFrom := len(entries) - 2*trendWindow
	if olderFrom < 0 {
		olderFrom = 0
	}
	older := entries[olderFrom : len(entries)-trendWindow]
	if len(older) == 0 {
		return models.TrendStable
	}

	recentAvg := meanStreak(recent)
	olderAvg := meanStreak(older)

	switch {
	case recentAvg > olderAvg*improvingThreshold:
		return models.TrendImproving
	case recentAvg < olderAvg*decliningThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func meanStreak(entries []models.DailyEntry) float64 {
	var sum float64
	for _, entry := range entries {
		sum += float64(entry.StreakDays)
	}

	return sum / float64(len(entries))
}

// DaysUntilNextMilestone returns the gap to the first milestone strictly
// above the current streak, or 0 once every milestone has been passed.
func DaysUntilNextMilestone(streak int) int {
	for _, m := range milestones {
		if m > streak {
			return m - streak
		}
	}

	return 0
}

// IsMilestone reports whether the streak exactly equals a milestone value.
func IsMilestone(streak int) bool {
	for _, m := range milestones {
		if m == streak {
			return true
		}
	}

	return false
}

// WeeklyStatsFor aggregates the entries dated strictly after now minus 7
// days. An empty window yields zero counts and zero means.
func WeeklyStatsFor(record *models.HistoryRecord, now time.Time) WeeklyStats {
	cutoff := utils.StartOfDay(now.UTC()).AddDate(0, 0, -7)

	var stats WeeklyStats
	var sumWPM, sumAcc float64
	for _, entry := range record.DailyEntries {
		date, err := time.Parse(models.DateFormat, entry.Date)
		if err != nil || !date.After(cutoff) {
			continue
		}

		stats.DaysPracticed++
		sumWPM += entry.AverageWPM
		sumAcc += entry.AverageAccuracy
	}

	if stats.DaysPracticed > 0 {
		stats.AverageWPM = sumWPM / float64(stats.DaysPracticed)
		stats.AverageAccuracy = sumAcc / float64(stats.DaysPracticed)
	}

	return stats
}
