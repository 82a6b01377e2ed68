package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/streak-guardian/internal/models"
)

// ComposeError builds the best-effort notification sent when a run fails.
func ComposeError(runErr error, now time.Time) *models.Notification {
	var b strings.Builder

	fmt.Fprintf(&b, "🔧 <b>Streak Guardian Error</b>\n\n")
	fmt.Fprintf(&b, "❌ %s\n", EscapeHTML(runErr.Error()))
	fmt.Fprintf(&b, "%s Time: %s\n\n", emojiClock, now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "🔍 Please check the system status.")

	return &models.Notification{Emoji: emojiWarning, Text: b.String()}
}

// EscapeHTML escapes the characters Telegram's HTML parse mode treats as
// markup. Ampersands go first so already escaped sequences stay intact.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
