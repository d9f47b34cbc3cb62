package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStatusBar_DefaultContent(t *testing.T) {
	sb := New()
	sb.SetWidth(80)
	sb.SetCounts(3, 5)
	sb.SetGenre("drama")
	sb.SetChatState("revealing")
	sb.SetSession("lx2k9abc1234567890")

	view := ansi.Strip(sb.View())
	for _, want := range []string{"[cinemax] 3/5 movies", "drama", "chat: revealing", "session lx2k9abc"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in %q", want, view)
		}
	}
	if strings.Contains(view, "lx2k9abc1") {
		t.Errorf("Expected shortened session id, got %q", view)
	}
	if w := ansi.StringWidth(view); w != 80 {
		t.Errorf("Expected width 80, got %d", w)
	}
}

func TestStatusBar_MessageReplacesCounters(t *testing.T) {
	sb := New()
	sb.SetWidth(60)
	sb.SetCounts(3, 3)
	sb.SetMessage("Copied last reply")

	view := ansi.Strip(sb.View())
	if !strings.Contains(view, "Copied last reply") || strings.Contains(view, "movies") {
		t.Errorf("Expected message instead of counters, got %q", view)
	}
	if sb.Message() != "Copied last reply" {
		t.Errorf("Unexpected message %q", sb.Message())
	}

	sb.SetMessage("")
	if !strings.Contains(ansi.Strip(sb.View()), "3/3 movies") {
		t.Error("Expected counters after clearing the message")
	}
}

func TestStatusBar_DefaultsChatStateToIdle(t *testing.T) {
	sb := New()
	sb.SetWidth(60)
	if !strings.Contains(ansi.Strip(sb.View()), "chat: idle") {
		t.Errorf("Expected idle chat state, got %q", sb.View())
	}
}

func TestLayout_Truncation(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
	}{
		{"fits", "left", "right", 20},
		{"left truncated", strings.Repeat("l", 30), "right", 20},
		{"right only", "left", strings.Repeat("r", 30), 20},
		{"tiny", "left", "right", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout(tt.left, tt.right, tt.width)
			if w := ansi.StringWidth(got); w != tt.width {
				t.Errorf("Expected width %d, got %d (%q)", tt.width, w, got)
			}
		})
	}
}

func TestStatusBar_ZeroWidth(t *testing.T) {
	if New().View() != "" {
		t.Error("Expected empty view with no width")
	}
}
