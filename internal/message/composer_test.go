package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/streak-guardian/internal/models"
)

func testSnapshot() *models.StreakSnapshot {
	return &models.StreakSnapshot{
		CurrentStreakDays:   24,
		TotalTestsCompleted: 1543,
		AverageWPM:          82.6,
		AverageAccuracy:     96.314,
	}
}

func TestCompose_MorningBranches(t *testing.T) {
	snapshot := testSnapshot()

	practiced := Compose(models.CategoryMorning, models.Analytics{HasPracticedToday: true, DaysUntilNextMilestone: 1}, snapshot)
	assert.Contains(t, practiced.Text, "already typed today")
	assert.Contains(t, practiced.Text, "1 days from your next milestone")
	assert.Empty(t, practiced.Buttons)

	waiting := Compose(models.CategoryMorning, models.Analytics{}, snapshot)
	assert.Contains(t, waiting.Text, "24-day streak is waiting")
	assert.Empty(t, waiting.Buttons)
}

func TestCompose_EscalationHasNoButtons(t *testing.T) {
	for _, category := range []models.TimeSlotCategory{
		models.CategoryMidday, models.CategoryAfternoon, models.CategoryEvening,
	} {
		notification := Compose(category, models.Analytics{}, testSnapshot())
		assert.Empty(t, notification.Buttons, "category %s", category)
	}
}

func TestCompose_MiddayAndAfternoonSafeLabels(t *testing.T) {
	midday := Compose(models.CategoryMidday, models.Analytics{HasPracticedToday: true}, testSnapshot())
	assert.Contains(t, midday.Text, "(SAFE)")

	evening := Compose(models.CategoryEvening, models.Analytics{HasPracticedToday: true}, testSnapshot())
	assert.Contains(t, evening.Text, "(SECURE)")
}

func TestCompose_FinalWarning(t *testing.T) {
	t.Run("at risk gets exactly one practice link", func(t *testing.T) {
		notification := Compose(models.CategoryFinalWarning, models.Analytics{}, testSnapshot())

		assert.Contains(t, notification.Text, "FINAL WARNING")
		assert.Contains(t, notification.Text, "24 DAYS ABOUT TO BE LOST")
		require.Len(t, notification.Buttons, 1)
		assert.Equal(t, PracticeSiteURL, notification.Buttons[0].URL)
	})

	t.Run("practiced sleeps well without buttons", func(t *testing.T) {
		notification := Compose(models.CategoryFinalWarning, models.Analytics{HasPracticedToday: true}, testSnapshot())

		assert.Contains(t, notification.Text, "Sleep well")
		assert.Empty(t, notification.Buttons)
	})
}

func TestCompose_MilestoneBanner(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.CurrentStreakDays = 25

	t.Run("appended when practiced on a milestone", func(t *testing.T) {
		notification := Compose(models.CategoryEvening, models.Analytics{IsMilestone: true, HasPracticedToday: true}, snapshot)
		assert.Contains(t, notification.Text, "MILESTONE ACHIEVED")
		assert.Contains(t, notification.Text, "25 DAYS STREAK")
	})

	t.Run("absent when not yet practiced", func(t *testing.T) {
		notification := Compose(models.CategoryEvening, models.Analytics{IsMilestone: true}, snapshot)
		assert.NotContains(t, notification.Text, "MILESTONE ACHIEVED")
	})

	t.Run("absent from the weekly report", func(t *testing.T) {
		notification := Compose(models.CategoryWeeklyReport, models.Analytics{IsMilestone: true, HasPracticedToday: true}, snapshot)
		assert.NotContains(t, notification.Text, "MILESTONE ACHIEVED")
	})
}

func TestCompose_StatsBlockRounding(t *testing.T) {
	for _, category := range []models.TimeSlotCategory{
		models.CategoryMorning, models.CategoryMidday, models.CategoryAfternoon,
		models.CategoryEvening, models.CategoryFinalWarning, models.CategoryGeneric,
	} {
		notification := Compose(category, models.Analytics{}, testSnapshot())
		assert.Contains(t, notification.Text, "Average WPM: 83", "category %s", category)
		assert.Contains(t, notification.Text, "Average Accuracy: 96.31%", "category %s", category)
		assert.Contains(t, notification.Text, "Total Tests: 1543", "category %s", category)
	}
}

func TestCompose_WeeklyReport(t *testing.T) {
	snapshot := testSnapshot()
	analytics := models.Analytics{
		LongestStreakDays:     42,
		WeeklyDaysPracticed:   6,
		WeeklyAverageWPM:      81.5,
		WeeklyAverageAccuracy: 95.6,
	}

	notification := Compose(models.CategoryWeeklyReport, analytics, snapshot)

	assert.Contains(t, notification.Text, "WEEKLY STREAK REPORT")
	assert.Contains(t, notification.Text, "Current Streak: <b>24 days</b>")
	assert.Contains(t, notification.Text, "Longest Streak: <b>42 days</b>")
	assert.Contains(t, notification.Text, "Days Practiced: 6/7")
	// Weekly accuracy rounds to a whole percent, unlike the daily block.
	assert.Contains(t, notification.Text, "Average Accuracy: 96%")
	assert.NotContains(t, notification.Text, "Quick Stats")
	assert.Empty(t, notification.Buttons)
}

func TestCompose_WeeklyClosingTiers(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{7, "PERFECT WEEK"},
		{6, "Great week"},
		{5, "Great week"},
		{4, "Room for improvement"},
		{0, "Room for improvement"},
	}

	for _, tt := range tests {
		notification := Compose(models.CategoryWeeklyReport, models.Analytics{WeeklyDaysPracticed: tt.days}, testSnapshot())
		assert.Contains(t, notification.Text, tt.want, "days practiced %d", tt.days)
	}
}

func TestCompose_GenericStatusOnly(t *testing.T) {
	safe := Compose(models.CategoryGeneric, models.Analytics{HasPracticedToday: true}, testSnapshot())
	assert.Contains(t, safe.Text, "Streak Status: 24 days")
	assert.Contains(t, safe.Text, "Safe for today")

	atRisk := Compose(models.CategoryGeneric, models.Analytics{}, testSnapshot())
	assert.Contains(t, atRisk.Text, "Needs attention")
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &amp;&lt;b&gt; c", EscapeHTML("a &<b> c"))
	assert.False(t, strings.Contains(EscapeHTML("<already> & <escaped>"), "<"))
}
