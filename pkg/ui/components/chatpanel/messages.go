package chatpanel

import (
	"strings"

	"cinemax_cli/pkg/transcript"
	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// bubbles take at most this share of the panel width
const bubbleRatio = 0.8

type markdownToken struct {
	text string
	bold bool
}

func renderMessages(msgs []transcript.Message, typing bool, width int) []string {
	var lines []string
	for i, msg := range msgs {
		if i > 0 {
			lines = append(lines, "")
		}
		inProgress := typing && i == len(msgs)-1 && msg.Role == transcript.RoleAssistant
		lines = append(lines, renderMessage(msg, inProgress, width)...)
	}
	return lines
}

func renderMessage(msg transcript.Message, inProgress bool, width int) []string {
	bubbleWidth := int(float64(width) * bubbleRatio)
	if bubbleWidth < 4 {
		bubbleWidth = width
	}
	// bubble padding
	textWidth := bubbleWidth - 2
	if textWidth < 1 {
		textWidth = 1
	}

	if msg.Role == transcript.RoleUser {
		out := []string{alignRight(styles.TextMutedStyle.Render(userLabel), width)}
		for _, line := range renderBubble(msg.Content, textWidth, styles.UserBubbleStyle) {
			out = append(out, alignRight(line, width))
		}
		return out
	}

	out := []string{styles.TextMutedStyle.Render(botLabel)}
	if inProgress && msg.Content == "" {
		return append(out, styles.TypingIndicatorStyle.Render(typingDots))
	}
	out = append(out, renderBubble(msg.Content, textWidth, styles.BotBubbleStyle)...)
	if inProgress {
		out = append(out, styles.TypingIndicatorStyle.Render(typingDots))
	}
	return out
}

// renderBubble wraps content and renders every line with the same width so
// the bubble background forms a block.
func renderBubble(content string, width int, style lipgloss.Style) []string {
	wrapped := wrapMarkdown(sanitizeContent(content), width)

	blockWidth := 0
	for _, line := range wrapped {
		if w := lipgloss.Width(line); w > blockWidth {
			blockWidth = w
		}
	}

	out := make([]string, 0, len(wrapped))
	for _, line := range wrapped {
		out = append(out, style.Render(utils.PadStyled(line, blockWidth)))
	}
	return out
}

func alignRight(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return strings.Repeat(" ", gap) + line
}

func wrapMarkdown(content string, width int) []string {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapTokens(tokenizeBoldWords(raw), width)...)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func tokenizeBoldWords(line string) []markdownToken {
	var tokens []markdownToken
	bold := false

	for len(line) > 0 {
		idx := strings.Index(line, "**")
		segment := line
		if idx >= 0 {
			segment = line[:idx]
		}
		for _, word := range strings.Fields(segment) {
			tokens = append(tokens, markdownToken{text: word, bold: bold})
		}
		if idx < 0 {
			break
		}
		bold = !bold
		line = line[idx+2:]
	}

	return tokens
}

func wrapTokens(tokens []markdownToken, width int) []string {
	var lines []string
	var lineTokens []markdownToken
	lineWidth := 0

	flush := func() {
		lines = append(lines, renderTokenLine(lineTokens))
		lineTokens = nil
		lineWidth = 0
	}

	for _, token := range tokens {
		for _, part := range utils.SplitByWidth(token.text, width) {
			partWidth := runewidth.StringWidth(part)
			if lineWidth > 0 && lineWidth+1+partWidth > width {
				flush()
			}
			if lineWidth > 0 {
				lineWidth++
			}
			lineTokens = append(lineTokens, markdownToken{text: part, bold: token.bold})
			lineWidth += partWidth
		}
	}
	if len(lineTokens) > 0 {
		flush()
	}
	return lines
}

func renderTokenLine(tokens []markdownToken) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if token.bold {
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render(token.text))
		} else {
			sb.WriteString(token.text)
		}
	}
	return sb.String()
}

// sanitizeContent drops control characters that would corrupt the layout.
func sanitizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r == '\n':
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString("    ")
		case r < 0x20 || r == 0x7f:
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
