// Package statusbar renders the bottom bar with listing and chat state.
package statusbar

import (
	"fmt"
	"strings"
	"sync"

	"cinemax_cli/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

const (
	minGap      = 2
	shortIDSize = 8
)

// StatusBar shows the listing counters on the left and the chat state on
// the right. A transient message replaces the left side.
type StatusBar struct {
	mu        sync.RWMutex
	shown     int
	total     int
	genre     string
	chatState string
	sessionID string
	message   string
	width     int
}

// New creates an empty status bar.
func New() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the render width.
func (sb *StatusBar) SetWidth(width int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.width = width
}

// SetCounts updates the shown/total movie counters.
func (sb *StatusBar) SetCounts(shown, total int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.shown = shown
	sb.total = total
}

// SetGenre updates the active genre filter label.
func (sb *StatusBar) SetGenre(genre string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.genre = strings.TrimSpace(genre)
}

// SetChatState updates the chat phase label.
func (sb *StatusBar) SetChatState(state string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.chatState = state
}

// SetSession sets the session id; only a short prefix is displayed.
func (sb *StatusBar) SetSession(id string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.sessionID = id
}

// SetMessage sets a transient message. An empty message restores the
// counters.
func (sb *StatusBar) SetMessage(msg string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = msg
}

// Message returns the transient message.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.message
}

// View renders the bar at the configured width.
func (sb *StatusBar) View() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	// StatusBarStyle horizontal padding
	innerWidth := sb.width - 2
	if innerWidth < 1 {
		return ""
	}

	left := sb.message
	if left == "" {
		left = fmt.Sprintf("[cinemax] %d/%d movies", sb.shown, sb.total)
		if sb.genre != "" {
			left += " · " + sb.genre
		}
	}

	right := "chat: " + orDefault(sb.chatState, "idle")
	if sb.sessionID != "" {
		right += " | session " + shortID(sb.sessionID)
	}

	return styles.StatusBarStyle.Render(layout(left, right, innerWidth))
}

// layout places left and right on one line of exactly width cells. The
// right side wins when space runs out.
func layout(left, right string, width int) string {
	rightWidth := ansi.StringWidth(right)
	if rightWidth >= width {
		return ansi.Truncate(right, width, "")
	}

	leftAvailable := width - rightWidth - minGap
	if leftAvailable < 0 {
		leftAvailable = 0
	}
	if ansi.StringWidth(left) > leftAvailable {
		tail := "..."
		if leftAvailable <= len(tail) {
			tail = ""
		}
		left = ansi.Truncate(left, leftAvailable, tail)
	}

	gap := width - ansi.StringWidth(left) - rightWidth
	return left + strings.Repeat(" ", gap) + right
}

func shortID(id string) string {
	if len(id) <= shortIDSize {
		return id
	}
	return id[:shortIDSize]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
