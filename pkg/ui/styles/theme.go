// Package styles provides the shared lipgloss theme for the cinemax UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (marquee blue)
	ColorAccent = lipgloss.Color("33")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text
	ColorTextDark   = lipgloss.Color("16")  // Text on light badges

	// Semantic colors
	ColorError   = lipgloss.Color("196")
	ColorWarning = lipgloss.Color("214")
	ColorRating  = lipgloss.Color("220") // Star rating badge

	// Surfaces
	ColorCard        = lipgloss.Color("236")
	ColorTag         = lipgloss.Color("26")
	ColorShowtime    = lipgloss.Color("239")
	ColorUserBubble  = lipgloss.Color("33")
	ColorBotBubble   = lipgloss.Color("250")
	ColorPlaceholder = lipgloss.Color("240")

	// Border colors
	ColorBorder      = lipgloss.Color("33")
	ColorBorderMuted = lipgloss.Color("238")
)

// Panel/Box styles
var (
	// BoxStyle is the default rounded box for overlays and panels
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	// CardStyle frames a movie in the listing grid
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted).
			Padding(0, 1)

	// CardSelectedStyle frames the movie under the cursor
	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	// ChatBoxStyle frames the chat panel
	ChatBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Text styles
var (
	// HeaderStyle is the top bar with the cinema name
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(lipgloss.Color("18")).
			Bold(true).
			Padding(0, 1)

	// HeaderMutedStyle renders the location next to the cinema name
	HeaderMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("153")).
				Background(lipgloss.Color("18")).
				Padding(0, 1)

	// TitleStyle for panel/section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// TextMutedStyle for secondary/helper text
	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// TextBoldStyle for emphasized text
	TextBoldStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Badges
var (
	TagStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorTag).
			Padding(0, 1)

	RatingStyle = lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Background(ColorRating).
			Bold(true).
			Padding(0, 1)

	ShowtimeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorShowtime).
			Padding(0, 1)
)

// Selection and highlighting
var (
	// SelectedStyle for highlighted/selected items
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorAccent).
			Bold(true)
)

// Chat styles
var (
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorUserBubble).
			Padding(0, 1)

	BotBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Background(ColorBotBubble).
			Padding(0, 1)

	TypingIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Blink(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorAccent).
			Padding(0, 1)

	ButtonBusyStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(lipgloss.Color("67")).
			Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorPlaceholder).
				Italic(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E40AF")).
			Padding(0, 1).
			Bold(true)
)

// Welcome screen styles
var (
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("33"))

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)

	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	WelcomeHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))

	WelcomeVersionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)
