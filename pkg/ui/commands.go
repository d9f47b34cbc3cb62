package ui

import (
	"context"
	"log/slog"
	"time"

	"cinemax_cli/pkg/chat"
	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/transcript"

	tea "charm.land/bubbletea/v2"
)

type catalogLoadedMsg struct {
	catalog feed.Catalog
	err     error
}

type chatReplyMsg struct {
	requestID uint64
	reply     chat.Reply
	err       error
}

// revealTickMsg advances the reveal with the given id by one character.
type revealTickMsg struct {
	revealID uint64
}

type historyClearedMsg struct {
	err error
}

func fetchCatalog(ctx context.Context, fetcher FeedFetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return catalogLoadedMsg{}
		}
		catalog, err := fetcher.Fetch(ctx)
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

// sendChat issues exactly one request; failures are reported back as a
// chatReplyMsg and never retried.
func sendChat(ctx context.Context, sender chat.Sender, req *transcript.Request) tea.Cmd {
	return func() tea.Msg {
		reply, err := sender.Send(ctx, chat.Request{
			Message:   req.Message,
			SessionID: req.SessionID,
		})
		return chatReplyMsg{requestID: req.ID, reply: reply, err: err}
	}
}

func clearHistory(ctx context.Context, sender chat.Sender, sessionID string) tea.Cmd {
	return func() tea.Msg {
		err := sender.ClearHistory(ctx, sessionID)
		if err == nil {
			slog.Debug("chat_history_cleared", "session_id", sessionID)
		}
		return historyClearedMsg{err: err}
	}
}

func revealTick(revealID uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return revealTickMsg{revealID: revealID}
	})
}
