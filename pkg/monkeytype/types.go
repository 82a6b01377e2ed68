package monkeytype

// UserResponse is the envelope the profile endpoint responds with.
type UserResponse struct {
	Message string `json:"message"`
	Data    *User  `json:"data"`
}

type User struct {
	Streak      *Streak      `json:"streak"`
	TypingStats *TypingStats `json:"typingStats"`
}

type Streak struct {
	Length int `json:"length"`
	// Milliseconds since the Unix epoch; 0 when the user has never finished
	// a test.
	LastResultTimestamp int64 `json:"lastResultTimestamp"`
}

type TypingStats struct {
	CompletedTests int     `json:"completedTests"`
	AvgWPM         float64 `json:"avgWpm"`
	AvgAcc         float64 `json:"avgAcc"`
}
