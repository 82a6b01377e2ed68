// Package message maps a resolved time-slot category plus the run's analytics
// into the final notification: body text, a leading emphasis emoji and the
// optional action buttons. Composition is pure string building; nothing here
// talks to Telegram.
package message

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/streak-guardian/internal/models"
)

// PracticeSiteURL is the home of the practice site the final warning links to.
const PracticeSiteURL = "https://monkeytype.com"

const practiceButtonLabel = "🏃‍♂️ GO TO MONKEYTYPE NOW!"

const (
	emojiFire        = "🔥"
	emojiStar        = "⭐"
	emojiWarning     = "⚠️"
	emojiUrgent      = "🚨"
	emojiCelebration = "🎉"
	emojiMuscle      = "💪"
	emojiTarget      = "🎯"
	emojiRocket      = "🚀"
	emojiSunrise     = "🌅"
	emojiCheck       = "✅"
	emojiClock       = "⏰"
	emojiThumbsUp    = "👍"
	emojiMoon        = "🌙"
	emojiSOS         = "🆘"
	emojiSleep       = "😴"
	emojiChart       = "📊"
	emojiTrendUp     = "📈"
	emojiConfetti    = "🎊"
	emojiTrophy      = "🏆"
)

// Compose builds the notification for one run. The weekly report has a single
// branch; every other category branches on whether today's practice is
// already done.
func Compose(category models.TimeSlotCategory, analytics models.Analytics, snapshot *models.StreakSnapshot) *models.Notification {
	if category == models.CategoryWeeklyReport {
		return composeWeeklyReport(analytics, snapshot)
	}

	notification := composeDaily(category, analytics, snapshot)

	if analytics.IsMilestone && analytics.HasPracticedToday {
		notification.Text += milestoneBanner(snapshot.CurrentStreakDays)
	}
	notification.Text += statsBlock(snapshot)

	return notification
}

func composeDaily(category models.TimeSlotCategory, analytics models.Analytics, snapshot *models.StreakSnapshot) *models.Notification {
	streak := snapshot.CurrentStreakDays
	practiced := analytics.HasPracticedToday

	var b strings.Builder
	var emoji string
	var buttons []models.ActionLink

	switch category {
	case models.CategoryMorning:
		if practiced {
			fmt.Fprintf(&b, "%s Amazing start! You've already typed today!\n\n", emojiCelebration)
			fmt.Fprintf(&b, "%s Current streak: <b>%d days</b>\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s You're %d days from your next milestone!", emojiTarget, analytics.DaysUntilNextMilestone)
			emoji = emojiStar
		} else {
			fmt.Fprintf(&b, "%s Good morning, typing champion!\n\n", emojiRocket)
			fmt.Fprintf(&b, "%s Your %d-day streak is waiting for you\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Let's make today count!", emojiMuscle)
			emoji = emojiSunrise
		}

	case models.CategoryMidday:
		if practiced {
			fmt.Fprintf(&b, "%s Midday check: You're all set!\n\n", emojiTarget)
			fmt.Fprintf(&b, "%s Streak: %d days (SAFE)\n", emojiFire, streak)
			fmt.Fprintf(&b, "Maybe squeeze in another practice session? %s", emojiMuscle)
			emoji = emojiCheck
		} else {
			fmt.Fprintf(&b, "%s Midday reminder: Haven't practiced yet today\n\n", emojiWarning)
			fmt.Fprintf(&b, "%s Your %d-day streak needs attention\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Perfect time for a quick session!", emojiTarget)
			emoji = emojiClock
		}

	case models.CategoryAfternoon:
		if practiced {
			fmt.Fprintf(&b, "%s Afternoon update: Streak secured!\n\n", emojiCelebration)
			fmt.Fprintf(&b, "%s %d days and counting\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s You're crushing it today!", emojiStar)
			emoji = emojiThumbsUp
		} else {
			fmt.Fprintf(&b, "%s Afternoon alert: Time is ticking!\n\n", emojiWarning)
			fmt.Fprintf(&b, "%s %d-day streak at risk\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Don't let your hard work slip away", emojiTarget)
			emoji = emojiWarning
		}

	case models.CategoryEvening:
		if practiced {
			fmt.Fprintf(&b, "%s Evening report: Mission accomplished!\n\n", emojiCelebration)
			fmt.Fprintf(&b, "%s Streak: %d days (SECURE)\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Rest easy, champion!", emojiStar)
			emoji = emojiMoon
		} else {
			fmt.Fprintf(&b, "%s EVENING WARNING!\n\n", emojiUrgent)
			fmt.Fprintf(&b, "%s Your %d-day streak is in DANGER\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Only a few hours left to save it!\n", emojiWarning)
			fmt.Fprintf(&b, "%s Quick 1-minute test can save everything!", emojiTarget)
			emoji = emojiUrgent
		}

	case models.CategoryFinalWarning:
		if practiced {
			fmt.Fprintf(&b, "%s Late night check: You're SAFE!\n\n", emojiCelebration)
			fmt.Fprintf(&b, "%s %d-day streak is secure\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s Sleep well, typing champion!", emojiStar)
			emoji = emojiSleep
		} else {
			fmt.Fprintf(&b, "%s FINAL WARNING! STREAK IN CRITICAL DANGER!\n\n", emojiUrgent)
			fmt.Fprintf(&b, "%s %d DAYS ABOUT TO BE LOST\n", emojiFire, streak)
			fmt.Fprintf(&b, "%s LESS THAN 1 HOUR REMAINING!\n", emojiWarning)
			fmt.Fprintf(&b, "%s SAVE YOUR STREAK NOW!\n\n", emojiTarget)
			fmt.Fprintf(&b, "Don't let %d days of hard work disappear!", streak)
			emoji = emojiSOS
			buttons = []models.ActionLink{{Label: practiceButtonLabel, URL: PracticeSiteURL}}
		}

	default:
		fmt.Fprintf(&b, "%s Streak Status: %d days\n", emojiFire, streak)
		if practiced {
			fmt.Fprintf(&b, "%s Safe for today", emojiCheck)
			emoji = emojiCheck
		} else {
			fmt.Fprintf(&b, "%s Needs attention", emojiWarning)
			emoji = emojiWarning
		}
	}

	return &models.Notification{
		Emoji:   emoji,
		Text:    b.String(),
		Buttons: buttons,
	}
}

func composeWeeklyReport(analytics models.Analytics, snapshot *models.StreakSnapshot) *models.Notification {
	var b strings.Builder

	fmt.Fprintf(&b, "%s <b>WEEKLY STREAK REPORT</b> %s\n\n", emojiTrendUp, emojiTrendUp)
	fmt.Fprintf(&b, "%s Current Streak: <b>%d days</b>\n", emojiFire, snapshot.CurrentStreakDays)
	fmt.Fprintf(&b, "%s Longest Streak: <b>%d days</b>\n\n", emojiTrophy, analytics.LongestStreakDays)

	fmt.Fprintf(&b, "%s <b>This Week's Performance:</b>\n", emojiChart)
	fmt.Fprintf(&b, "• Days Practiced: %d/7\n", analytics.WeeklyDaysPracticed)
	fmt.Fprintf(&b, "• Average WPM: %d\n", roundWPM(analytics.WeeklyAverageWPM))
	// The weekly report rounds accuracy to a whole percent, unlike the daily
	// stats block.
	fmt.Fprintf(&b, "• Average Accuracy: %d%%\n", int(math.Round(analytics.WeeklyAverageAccuracy)))
	fmt.Fprintf(&b, "• Total Tests: %d\n\n", snapshot.TotalTestsCompleted)

	switch {
	case analytics.WeeklyDaysPracticed == 7:
		fmt.Fprintf(&b, "%s <b>PERFECT WEEK!</b> You practiced every single day!\n", emojiCelebration)
		fmt.Fprintf(&b, "%s Keep this momentum going, champion!", emojiMuscle)
	case analytics.WeeklyDaysPracticed >= 5:
		fmt.Fprintf(&b, "%s <b>Great week!</b> You're staying consistent!\n", emojiThumbsUp)
		fmt.Fprintf(&b, "%s Aim for all 7 days next week!", emojiTarget)
	default:
		fmt.Fprintf(&b, "%s <b>Room for improvement</b> - only %d days practiced\n", emojiWarning, analytics.WeeklyDaysPracticed)
		fmt.Fprintf(&b, "%s Let's aim higher next week!", emojiMuscle)
	}

	return &models.Notification{Emoji: emojiTrendUp, Text: b.String()}
}

func milestoneBanner(streak int) string {
	return fmt.Sprintf("\n\n%s MILESTONE ACHIEVED! %s\n%d DAYS STREAK! %s",
		emojiConfetti, emojiConfetti, streak, emojiTrophy)
}

func statsBlock(snapshot *models.StreakSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n\n%s <b>Quick Stats:</b>", emojiChart)
	fmt.Fprintf(&b, "\n• Average WPM: %d", roundWPM(snapshot.AverageWPM))
	fmt.Fprintf(&b, "\n• Average Accuracy: %.2f%%", snapshot.AverageAccuracy)
	fmt.Fprintf(&b, "\n• Total Tests: %d", snapshot.TotalTestsCompleted)

	return b.String()
}

func roundWPM(wpm float64) int {
	return int(math.Round(wpm))
}
