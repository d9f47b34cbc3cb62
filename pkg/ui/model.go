// Package ui is the Bubble Tea application: the listing grid, the movie
// detail panel and the chat panel driven by the transcript controller.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cinemax_cli/pkg/chat"
	"cinemax_cli/pkg/commands"
	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/transcript"
	"cinemax_cli/pkg/ui/components/chatpanel"
	"cinemax_cli/pkg/ui/components/detail"
	"cinemax_cli/pkg/ui/components/listing"
	"cinemax_cli/pkg/ui/components/picker"
	"cinemax_cli/pkg/ui/components/statusbar"
	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/components/welcome"
	"cinemax_cli/pkg/ui/render"
	"cinemax_cli/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FeedFetcher loads the movie catalog.
type FeedFetcher interface {
	Fetch(ctx context.Context) (feed.Catalog, error)
}

// Model represents the Bubble Tea application state
type Model struct {
	ctx        context.Context
	fetcher    FeedFetcher
	sender     chat.Sender
	transcript *transcript.Controller
	dispatcher *commands.Dispatcher
	interval   time.Duration

	// UI components
	grid      *listing.Grid
	detail    *detail.Panel
	picker    *picker.GenrePicker
	chatPanel *chatpanel.Panel
	statusBar *statusbar.StatusBar

	catalog feed.Catalog
	loading bool

	width  int
	height int
}

// NewModel creates the root model. interval is the delay between revealed
// characters of an assistant reply.
func NewModel(ctx context.Context, fetcher FeedFetcher, sender chat.Sender, tc *transcript.Controller, interval time.Duration) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}

	m := Model{
		ctx:        ctx,
		fetcher:    fetcher,
		sender:     sender,
		transcript: tc,
		dispatcher: commands.NewDispatcher(),
		interval:   interval,
		grid:       listing.New(),
		detail:     detail.New(),
		picker:     picker.NewGenrePicker(),
		chatPanel:  chatpanel.New(),
		statusBar:  statusbar.New(),
		loading:    true,
	}
	m.statusBar.SetSession(tc.SessionID())
	m.syncChat()
	return m
}

// Init starts loading the catalog.
func (m Model) Init() tea.Cmd {
	return fetchCatalog(m.ctx, m.fetcher)
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		if m.chatFocused() {
			m.chatPanel.HandlePaste(msg.Content)
		}
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// the grid stays empty; the failure is only logged
			slog.Error("feed_load_failed", "error", msg.err)
		}
		m.catalog = msg.catalog
		m.grid.SetMovies(msg.catalog.Movies)
		m.syncStatus()
		return m, nil

	case chatpanel.SubmitMsg:
		return m.submit(msg.Content)

	case chatReplyMsg:
		if msg.err != nil {
			m.transcript.Fail(msg.requestID, msg.err)
			m.syncChat()
			return m, nil
		}
		revealID, ok := m.transcript.Resolve(msg.requestID, msg.reply.Response)
		m.syncChat()
		if !ok {
			return m, nil
		}
		return m, revealTick(revealID, m.interval)

	case revealTickMsg:
		more := m.transcript.Tick(msg.revealID)
		m.syncChat()
		if more {
			return m, revealTick(msg.revealID, m.interval)
		}
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			slog.Warn("chat_history_clear_failed", "error", msg.err)
		}
		return m, nil

	case picker.GenreSelectMsg:
		m.grid.SetGenre(msg.Genre)
		m.syncStatus()
		return m, nil

	case listing.OpenDetailMsg:
		m.detail.Show(msg.Movie)
		return m, nil

	case detail.CloseMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.transcript.Cancel()
		return m, tea.Quit
	}

	m.statusBar.SetMessage("")

	if m.picker.IsVisible() {
		return m, m.picker.Update(msg)
	}
	if m.detail.IsVisible() {
		return m, m.detail.Update(msg)
	}

	switch key {
	case "ctrl+t":
		m.toggleChat()
		return m, nil
	case "ctrl+l":
		return m, m.clearConversation()
	}

	if m.chatFocused() {
		switch key {
		case "tab":
			m.chatPanel.ToggleFocus()
		case "esc":
			m.toggleChat()
		default:
			return m, m.chatPanel.Update(msg)
		}
		return m, nil
	}

	switch key {
	case "q":
		m.transcript.Cancel()
		return m, tea.Quit
	case "tab":
		if m.transcript.IsOpen() {
			m.chatPanel.FocusInput()
		}
		return m, nil
	case "esc":
		if m.transcript.IsOpen() {
			m.toggleChat()
		}
		return m, nil
	case "g":
		m.picker.Show(feed.Genres(m.grid.All()), m.grid.Genre())
		return m, nil
	case "y":
		return m, m.copyLastReply()
	}

	return m, m.grid.Update(msg)
}

// submit routes chat input either to a local slash command or to the
// transcript controller.
func (m Model) submit(content string) (tea.Model, tea.Cmd) {
	if name, args, ok := commands.Parse(content); ok {
		m.chatPanel.ClearInput()
		result := m.dispatcher.Dispatch(name, commands.NewContext(m.catalog, m.transcript.SessionID(), args))
		return m, m.applyResult(result)
	}

	req, err := m.transcript.Submit(content)
	if errors.Is(err, transcript.ErrBusy) {
		m.statusBar.SetMessage("Wait for the current reply to finish")
		return m, nil
	}
	if req == nil {
		return m, nil
	}

	m.chatPanel.ClearInput()
	m.syncChat()
	return m, sendChat(m.ctx, m.sender, req)
}

func (m Model) applyResult(result *commands.Result) tea.Cmd {
	if result.Error != nil {
		slog.Debug("command_failed", "title", result.Title, "error", result.Error)
	}

	switch result.Action {
	case commands.ActionSetGenre:
		m.grid.SetGenre(result.Genre)
		m.syncStatus()
		m.statusBar.SetMessage(result.Content)
		return nil
	case commands.ActionClearChat:
		return m.clearConversation()
	case commands.ActionShowMovie:
		m.detail.Show(result.Movie)
		return nil
	}

	if strings.TrimSpace(result.Content) != "" {
		m.detail.ShowMarkdown(result.Title, result.Content)
	}
	return nil
}

func (m Model) clearConversation() tea.Cmd {
	if err := m.transcript.Clear(); err != nil {
		m.statusBar.SetMessage("Wait for the current reply to finish")
		return nil
	}
	m.syncChat()
	m.statusBar.SetMessage("Conversation cleared")
	return clearHistory(m.ctx, m.sender, m.transcript.SessionID())
}

func (m Model) copyLastReply() tea.Cmd {
	reply, ok := m.transcript.LastReply()
	if !ok {
		m.statusBar.SetMessage("Nothing to copy yet")
		return nil
	}
	m.statusBar.SetMessage("Copied last reply")
	return chatpanel.Copy(reply)
}

func (m Model) toggleChat() {
	if m.transcript.Toggle() {
		m.chatPanel.FocusInput()
	} else if m.chatPanel.IsFocusedOnInput() {
		m.chatPanel.ToggleFocus()
	}
	m.layout()
}

func (m Model) chatFocused() bool {
	return m.transcript.IsOpen() && m.chatPanel.IsFocusedOnInput()
}

func (m Model) syncChat() {
	m.chatPanel.SetMessages(m.transcript.Messages(), m.transcript.Typing())
	m.statusBar.SetChatState(chatStateLabel(m.transcript))
}

// chatStateLabel is the phase, with reveal progress while typing and the
// message count otherwise.
func chatStateLabel(tc *transcript.Controller) string {
	label := tc.Phase().String()
	if r, ok := tc.ActiveReveal(); ok {
		return fmt.Sprintf("%s %d/%d", label, r.Revealed(), r.Len())
	}
	if n := tc.Len(); n > 0 {
		return fmt.Sprintf("%s (%d msgs)", label, n)
	}
	return label
}

func (m Model) syncStatus() {
	m.statusBar.SetCounts(len(m.grid.Movies()), len(m.grid.All()))
	m.statusBar.SetGenre(m.grid.Genre())
}

func (m Model) layout() {
	bodyHeight := render.BodyHeight(m.height)
	gridW, chatW := render.SplitWidth(m.width, m.transcript.IsOpen())

	m.grid.SetSize(gridW, bodyHeight)
	m.chatPanel.SetSize(chatW, bodyHeight)
	m.detail.SetSize(m.width, bodyHeight)
	m.picker.SetSize(m.width, bodyHeight)
	m.statusBar.SetWidth(m.width)
}

// View renders the full screen.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "cinemax"
	return v
}

func (m Model) render() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bodyHeight := render.BodyHeight(m.height)
	body := m.renderBody(bodyHeight)

	switch {
	case m.picker.IsVisible():
		body = render.Overlay(body, m.picker.View(), m.width, bodyHeight)
	case m.detail.IsVisible():
		body = render.Overlay(body, m.detail.View(), m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.statusBar.View(),
	)
}

func (m Model) renderHeader() string {
	name := m.catalog.Cinema
	if name == "" {
		name = "Cinemax"
	}
	header := styles.HeaderStyle.Render(name)
	if m.catalog.Location != "" {
		header += styles.HeaderMutedStyle.Render(m.catalog.Location)
	}
	header = utils.TruncateToWidth(header, m.width)
	fill := m.width - lipgloss.Width(header)
	if fill > 0 {
		header += styles.HeaderMutedStyle.UnsetPadding().Render(strings.Repeat(" ", fill))
	}
	return header
}

func (m Model) renderBody(height int) string {
	gridW, chatW := render.SplitWidth(m.width, m.transcript.IsOpen())

	var main string
	if m.loading {
		main = lipgloss.Place(gridW, height, lipgloss.Center, lipgloss.Center, welcome.Message(welcome.LoadingText))
	} else if gridW > 0 {
		main = lipgloss.NewStyle().Width(gridW).Height(height).MaxHeight(height).Render(m.grid.View())
	}

	if chatW == 0 {
		return main
	}
	chatView := lipgloss.NewStyle().MaxHeight(height).Render(m.chatPanel.View())
	if gridW == 0 {
		return chatView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, chatView)
}
