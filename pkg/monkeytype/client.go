package monkeytype

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yourusername/streak-guardian/internal/models"
)

const (
	defaultBaseURL = "https://api.monkeytype.com"
	userAgent      = "StreakGuardian/1.0"
)

// FetchError reports an unreachable data source, a rejected request or a
// malformed payload.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch streak snapshot (status: %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("fetch streak snapshot: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apeKey     string
}

func NewClient(apeKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apeKey:     apeKey,
	}
}

// NewClientWithBaseURL points the client at a non-default API host, which the
// tests use to talk to a local server.
func NewClientWithBaseURL(apeKey, baseURL string) *Client {
	c := NewClient(apeKey)
	c.baseURL = baseURL
	return c
}

// FetchSnapshot reads the user profile and flattens it into the snapshot the
// engine consumes.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.StreakSnapshot, error) {
	url := fmt.Sprintf("%s/users", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("create request (url: %s): %w", url, err)}
	}

	req.Header.Set("Authorization", "ApeKey "+c.apeKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("execute request (url: %s): %w", url, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("request failed (url: %s): %s", url, string(body))}
	}

	var response UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode response (url: %s): %w", url, err)}
	}

	if response.Data == nil {
		return nil, &FetchError{Err: fmt.Errorf("invalid response from MonkeyType API (url: %s)", url)}
	}

	return toSnapshot(response.Data), nil
}

func toSnapshot(user *User) *models.StreakSnapshot {
	snapshot := &models.StreakSnapshot{}

	if user.Streak != nil {
		snapshot.CurrentStreakDays = user.Streak.Length
		if user.Streak.LastResultTimestamp > 0 {
			t := time.UnixMilli(user.Streak.LastResultTimestamp).UTC()
			snapshot.LastPracticedAt = &t
		}
	}

	if user.TypingStats != nil {
		snapshot.TotalTestsCompleted = user.TypingStats.CompletedTests
		snapshot.AverageWPM = user.TypingStats.AvgWPM
		snapshot.AverageAccuracy = user.TypingStats.AvgAcc
	}

	return snapshot
}
