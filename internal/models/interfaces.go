package models

import "context"

// SnapshotClient fetches the current streak snapshot from the data source.
type SnapshotClient interface {
	FetchSnapshot(ctx context.Context) (*StreakSnapshot, error)
}

// Notifier delivers a composed notification to the configured chat.
type Notifier interface {
	Send(ctx context.Context, notification *Notification) error
}

// HistoryStore persists the rolling streak history. Load never fails: a
// missing or unreadable record is treated as absence and an empty record is
// returned. The history is the single shared mutable resource; concurrent
// writers are last-write-wins and non-overlapping invocations are expected to
// be ensured externally.
type HistoryStore interface {
	Load(ctx context.Context) *HistoryRecord
	Save(ctx context.Context, record *HistoryRecord) error
}
