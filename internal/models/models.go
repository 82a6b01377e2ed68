package models

import "time"

// StreakSnapshot is a point-in-time read of the user's streak and aggregate
// typing stats as reported by the data source. Immutable once fetched.
type StreakSnapshot struct {
	CurrentStreakDays   int
	LastPracticedAt     *time.Time
	TotalTestsCompleted int
	AverageWPM          float64
	AverageAccuracy     float64
}

// DateFormat is the day-granularity layout used for DailyEntry.Date.
const DateFormat = "2006-01-02"

// DailyEntry is one day's snapshot in the rolling history. Immutable once
// appended.
type DailyEntry struct {
	Date            string  `json:"date" db:"date"`
	StreakDays      int     `json:"streak" db:"streak_days"`
	AverageWPM      float64 `json:"avgWpm" db:"avg_wpm"`
	AverageAccuracy float64 `json:"avgAcc" db:"avg_acc"`
	TotalTests      int     `json:"totalTests" db:"total_tests"`
}

// HistoryRecord holds at most the 90 most recent daily entries in strictly
// increasing date order, one entry per calendar day.
type HistoryRecord struct {
	DailyEntries  []DailyEntry `json:"streaks"`
	LastUpdatedAt *time.Time   `json:"lastUpdate"`
}

type TimeSlotCategory string

const (
	CategoryMorning      TimeSlotCategory = "morning"
	CategoryMidday       TimeSlotCategory = "midday"
	CategoryAfternoon    TimeSlotCategory = "afternoon"
	CategoryEvening      TimeSlotCategory = "evening"
	CategoryFinalWarning TimeSlotCategory = "warning"
	CategoryWeeklyReport TimeSlotCategory = "weekly"
	CategoryGeneric      TimeSlotCategory = "generic"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Analytics is recomputed on every run from (snapshot, history, now), never
// persisted.
type Analytics struct {
	LongestStreakDays      int
	Trend                  Trend
	Risk                   RiskLevel
	DaysUntilNextMilestone int
	IsMilestone            bool
	HasPracticedToday      bool
	WeeklyDaysPracticed    int
	WeeklyAverageWPM       float64
	WeeklyAverageAccuracy  float64
}

// ActionLink is a labeled hyperlink button attached to a notification.
type ActionLink struct {
	Label string
	URL   string
}

// Notification is the composed outbound message: body text with a leading
// emphasis emoji and zero or more link buttons.
type Notification struct {
	Emoji   string
	Text    string
	Buttons []ActionLink
}
