// Package chatpanel renders the chat transcript next to the listings and
// owns the text input used to talk to the assistant.
package chatpanel

import (
	"fmt"
	"os"
	"strings"

	"cinemax_cli/pkg/transcript"
	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	panelBorderSize = 1
	panelPaddingH   = 1
	inputHeight     = 3

	// title, separator, button row
	chromeLines = 3

	panelTitle  = "Chat"
	EmptyHint   = "Ask me about movies, showtimes or promotions"
	SendLabel   = "Send"
	TypingLabel = "Typing..."
	userLabel   = "You"
	botLabel    = "Cinemax"
	typingDots  = "..."
)

// FocusTarget indicates which part of the chat panel has focus.
type FocusTarget int

const (
	FocusInput FocusTarget = iota
	FocusTranscript
)

// SubmitMsg is emitted when the user presses Enter in the input.
// The input is left untouched; the owner clears it once the submission
// is accepted.
type SubmitMsg struct {
	Content string
}

// Panel displays the conversation and the input area.
type Panel struct {
	width  int
	height int

	textarea textarea.Model
	focused  FocusTarget

	messages []transcript.Message
	typing   bool

	lines   []string
	scrollY int
	follow  bool
}

// New creates a chat panel with the input focused.
func New() *Panel {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.ShowLineNumbers = false
	ta.Prompt = "> "
	ta.SetHeight(inputHeight)
	ta.Focus()

	return &Panel{
		textarea: ta,
		focused:  FocusInput,
		follow:   true,
	}
}

// SetSize sets the panel dimensions, borders included.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.textarea.SetWidth(p.contentWidth())
	p.reflow()
}

// SetMessages replaces the displayed transcript. typing marks the last
// message as still in progress.
func (p *Panel) SetMessages(msgs []transcript.Message, typing bool) {
	p.messages = msgs
	p.typing = typing
	p.reflow()
}

// Input returns the pending input text.
func (p *Panel) Input() string {
	return p.textarea.Value()
}

// SetInput replaces the pending input text.
func (p *Panel) SetInput(text string) {
	p.textarea.SetValue(text)
}

// ClearInput empties the input after an accepted submission.
func (p *Panel) ClearInput() {
	p.textarea.Reset()
}

// HandlePaste routes paste content to the input.
func (p *Panel) HandlePaste(content string) {
	if p.focused == FocusInput {
		p.textarea.InsertString(content)
	}
}

// ToggleFocus switches focus between the transcript and the input.
func (p *Panel) ToggleFocus() {
	if p.focused == FocusInput {
		p.focused = FocusTranscript
		p.textarea.Blur()
	} else {
		p.FocusInput()
	}
}

// FocusInput moves focus to the input.
func (p *Panel) FocusInput() {
	p.focused = FocusInput
	p.textarea.Focus()
}

// IsFocusedOnInput reports whether key presses go to the input.
func (p *Panel) IsFocusedOnInput() bool {
	return p.focused == FocusInput
}

// Update handles a key press routed to the panel.
func (p *Panel) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "down", "pgup", "pgdown":
		p.scroll(msg.String())
		return nil
	}

	if p.focused != FocusInput {
		return nil
	}

	if msg.String() == "enter" {
		content := p.textarea.Value()
		if strings.TrimSpace(content) == "" {
			return nil
		}
		return func() tea.Msg {
			return SubmitMsg{Content: content}
		}
	}

	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	return cmd
}

// Copy writes text to the system clipboard through OSC 52.
func Copy(text string) tea.Cmd {
	return func() tea.Msg {
		_, _ = fmt.Fprint(os.Stdout, osc52.New(text))
		return nil
	}
}

func (p *Panel) scroll(key string) {
	maxScroll := p.maxScroll()

	switch key {
	case "up":
		if p.scrollY > 0 {
			p.scrollY--
			p.follow = false
		}
	case "down":
		if p.scrollY < maxScroll {
			p.scrollY++
		}
		p.follow = p.scrollY >= maxScroll
	case "pgup":
		p.scrollY -= 10
		if p.scrollY < 0 {
			p.scrollY = 0
		}
		p.follow = false
	case "pgdown":
		p.scrollY += 10
		if p.scrollY > maxScroll {
			p.scrollY = maxScroll
		}
		p.follow = p.scrollY >= maxScroll
	}
}

// View renders the panel.
func (p *Panel) View() string {
	contentWidth := p.contentWidth()
	transcriptHeight := p.transcriptHeight()

	lines := make([]string, 0, transcriptHeight+chromeLines+inputHeight)
	lines = append(lines, utils.PadStyled(styles.TitleStyle.Render(utils.TruncateToWidth(panelTitle, contentWidth)), contentWidth))

	start := p.scrollY
	end := start + transcriptHeight
	if end > len(p.lines) {
		end = len(p.lines)
	}
	for i := start; i < end; i++ {
		lines = append(lines, utils.PadStyled(p.lines[i], contentWidth))
	}
	for len(lines) < 1+transcriptHeight {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}

	lines = append(lines, styles.TextMutedStyle.Render(strings.Repeat("─", contentWidth)))

	inputLines := strings.Split(p.textarea.View(), "\n")
	for i := 0; i < inputHeight; i++ {
		line := ""
		if i < len(inputLines) {
			line = inputLines[i]
		}
		lines = append(lines, utils.PadStyled(line, contentWidth))
	}

	lines = append(lines, p.renderButtonRow(contentWidth))

	boxWidth := p.width
	if boxWidth < 1 {
		boxWidth = 1
	}
	return styles.ChatBoxStyle.
		Width(boxWidth).
		Padding(0, panelPaddingH).
		Render(strings.Join(lines, "\n"))
}

// ButtonLabel returns the submit button text for the current state.
func (p *Panel) ButtonLabel() string {
	if p.typing {
		return TypingLabel
	}
	return SendLabel
}

func (p *Panel) renderButtonRow(width int) string {
	label := p.ButtonLabel()
	style := styles.ButtonStyle
	if p.typing {
		style = styles.ButtonBusyStyle
	}
	button := style.Render(label)

	hint := "Enter send · Tab focus · Ctrl+L clear"
	if !p.IsFocusedOnInput() {
		hint = "↑/↓ scroll · y copy · Tab input"
	}
	room := width - lipgloss.Width(button) - 1
	hint = styles.FooterStyle.Render(utils.TruncateToWidth(hint, room))

	gap := width - lipgloss.Width(hint) - lipgloss.Width(button)
	if gap < 1 {
		return utils.PadStyled(button, width)
	}
	return hint + strings.Repeat(" ", gap) + button
}

func (p *Panel) reflow() {
	width := p.contentWidth()
	if len(p.messages) == 0 {
		p.lines = renderEmptyState(width)
	} else {
		p.lines = renderMessages(p.messages, p.typing, width)
	}

	if p.follow || p.scrollY > p.maxScroll() {
		p.scrollY = p.maxScroll()
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

func (p *Panel) contentWidth() int {
	width := p.width - 2*(panelBorderSize+panelPaddingH)
	if width < 1 {
		return 1
	}
	return width
}

func (p *Panel) transcriptHeight() int {
	height := p.height - 2*panelBorderSize - chromeLines - inputHeight
	if height < 1 {
		return 1
	}
	return height
}

func (p *Panel) maxScroll() int {
	max := len(p.lines) - p.transcriptHeight()
	if max < 0 {
		return 0
	}
	return max
}

func renderEmptyState(width int) []string {
	lines := []string{""}
	for _, line := range utils.WrapWords(EmptyHint, width) {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.PlaceholderStyle.Render(line)))
	}
	return lines
}
