package chatpanel

import (
	"strings"
	"testing"

	"cinemax_cli/pkg/transcript"
	"cinemax_cli/pkg/ui/components/testutils"

	"github.com/charmbracelet/x/ansi"
)

func newTestPanel() *Panel {
	p := New()
	p.SetSize(50, 24)
	return p
}

func plainView(p *Panel) string {
	return ansi.Strip(p.View())
}

func TestPanel_EmptyStateHint(t *testing.T) {
	p := newTestPanel()

	view := plainView(p)
	if !strings.Contains(view, "Ask me about movies") {
		t.Errorf("Expected empty-state hint, got:\n%s", view)
	}
	if !strings.Contains(view, SendLabel) {
		t.Errorf("Expected %q button, got:\n%s", SendLabel, view)
	}
}

func TestPanel_RendersBothRoles(t *testing.T) {
	p := newTestPanel()
	p.SetMessages([]transcript.Message{
		{Role: transcript.RoleUser, Content: "Que hay hoy?"},
		{Role: transcript.RoleAssistant, Content: "Dune a las 20:00"},
	}, false)

	view := plainView(p)
	for _, want := range []string{"Que hay hoy?", "Dune a las 20:00", userLabel, botLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Ask me about movies") {
		t.Error("Expected hint to disappear once messages exist")
	}
}

func TestPanel_UserMessagesAlignRight(t *testing.T) {
	lines := renderMessage(transcript.Message{Role: transcript.RoleUser, Content: "hola"}, false, 40)
	last := ansi.Strip(lines[len(lines)-1])
	if !strings.HasPrefix(last, " ") || ansi.StringWidth(last) != 40 {
		t.Errorf("Expected right aligned bubble of width 40, got %q", last)
	}

	lines = renderMessage(transcript.Message{Role: transcript.RoleAssistant, Content: "hola"}, false, 40)
	last = ansi.Strip(lines[len(lines)-1])
	if strings.HasPrefix(last, "  ") {
		t.Errorf("Expected left aligned assistant bubble, got %q", last)
	}
}

func TestPanel_TypingIndicatorAndLabel(t *testing.T) {
	p := newTestPanel()
	p.SetMessages([]transcript.Message{
		{Role: transcript.RoleUser, Content: "hola"},
		{Role: transcript.RoleAssistant},
	}, true)

	if p.ButtonLabel() != TypingLabel {
		t.Errorf("Expected %q label while typing, got %q", TypingLabel, p.ButtonLabel())
	}
	view := plainView(p)
	if !strings.Contains(view, TypingLabel) || !strings.Contains(view, typingDots) {
		t.Errorf("Expected typing indicator, got:\n%s", view)
	}

	p.SetMessages([]transcript.Message{
		{Role: transcript.RoleUser, Content: "hola"},
		{Role: transcript.RoleAssistant, Content: "listo"},
	}, false)
	if p.ButtonLabel() != SendLabel {
		t.Errorf("Expected %q label when idle, got %q", SendLabel, p.ButtonLabel())
	}
}

func TestPanel_EnterEmitsSubmitWithoutClearing(t *testing.T) {
	p := newTestPanel()
	p.SetInput("  horarios de Dune  ")

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("Expected SubmitMsg, got %T", cmd())
	}
	if msg.Content != "  horarios de Dune  " {
		t.Errorf("Expected content as typed, got %q", msg.Content)
	}
	if p.Input() == "" {
		t.Error("Expected input to be kept until the owner clears it")
	}

	p.ClearInput()
	if p.Input() != "" {
		t.Errorf("Expected input cleared, got %q", p.Input())
	}
}

func TestPanel_BlankEnterDoesNothing(t *testing.T) {
	p := newTestPanel()
	p.SetInput("   ")

	if cmd := p.Update(testutils.TestKeyEnter); cmd != nil {
		t.Error("Expected no command for blank input")
	}
}

func TestPanel_ToggleFocus(t *testing.T) {
	p := newTestPanel()
	if !p.IsFocusedOnInput() {
		t.Fatal("Expected input focused initially")
	}

	p.ToggleFocus()
	if p.IsFocusedOnInput() {
		t.Fatal("Expected transcript focus after toggle")
	}
	p.SetInput("hola")
	if cmd := p.Update(testutils.TestKeyEnter); cmd != nil {
		t.Error("Expected Enter to be ignored without input focus")
	}

	p.ToggleFocus()
	if !p.IsFocusedOnInput() {
		t.Error("Expected input focus after second toggle")
	}
}

func TestPanel_ScrollFollowsNewMessages(t *testing.T) {
	p := New()
	p.SetSize(40, 12)

	var msgs []transcript.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs,
			transcript.Message{Role: transcript.RoleUser, Content: "pregunta"},
			transcript.Message{Role: transcript.RoleAssistant, Content: "respuesta"},
		)
	}
	p.SetMessages(msgs, false)
	if p.scrollY != p.maxScroll() {
		t.Fatalf("Expected scroll at bottom, got %d of %d", p.scrollY, p.maxScroll())
	}

	p.Update(testutils.TestKeyPgUp)
	if p.scrollY == p.maxScroll() {
		t.Fatal("Expected PgUp to scroll away from bottom")
	}
	held := p.scrollY

	p.SetMessages(append(msgs, transcript.Message{Role: transcript.RoleUser, Content: "otra"}), false)
	if p.scrollY != held {
		t.Errorf("Expected scroll to stay at %d when not following, got %d", held, p.scrollY)
	}
}

func TestPanel_HandlePaste(t *testing.T) {
	p := newTestPanel()
	p.HandlePaste("combo familiar")
	if p.Input() != "combo familiar" {
		t.Errorf("Expected pasted input, got %q", p.Input())
	}

	p.ClearInput()
	p.ToggleFocus()
	p.HandlePaste("ignored")
	if p.Input() != "" {
		t.Errorf("Expected paste ignored without input focus, got %q", p.Input())
	}
}

func TestTokenizeBoldWords(t *testing.T) {
	tokens := tokenizeBoldWords("La **mejor** opcion")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].bold || !tokens[1].bold || tokens[2].bold {
		t.Errorf("Unexpected bold flags: %+v", tokens)
	}
}

func TestSanitizeContent(t *testing.T) {
	got := sanitizeContent("a\x1b[31mb\tc\r\nd")
	if got != "a[31mb    c\nd" {
		t.Errorf("Unexpected sanitized content %q", got)
	}
}
