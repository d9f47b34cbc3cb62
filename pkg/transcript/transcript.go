// Package transcript holds the chat history and drives the typewriter
// reveal of assistant replies.
//
// The Controller is not safe for concurrent use. It is owned by the UI
// update loop, which serializes submissions, replies and reveal ticks.
package transcript

import (
	"errors"
	"log/slog"
	"strings"
)

// FallbackText replaces the assistant reply when the backend is unreachable.
const FallbackText = "could not connect to server"

// ErrBusy is returned by Submit and Clear while a reply is pending or
// being revealed. Submissions are rejected, not queued.
var ErrBusy = errors.New("transcript: reply in progress")

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry.
type Message struct {
	Role    Role
	Content string
}

// Phase is the busy state of the controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSending
	PhaseRevealing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSending:
		return "sending"
	case PhaseRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Request is the outbound chat request produced by Submit.
type Request struct {
	ID        uint64
	Message   string
	SessionID string
}

// Controller owns the transcript, the busy phase and the active reveal.
type Controller struct {
	sessionID string
	messages  []Message
	phase     Phase
	pending   uint64 // request awaiting a reply, 0 when none
	reveal    *Reveal
	lastID    uint64
	open      bool
}

// New creates a controller bound to sessionID.
func New(sessionID string) *Controller {
	return &Controller{sessionID: sessionID}
}

// SessionID returns the identifier sent with every request.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Submit appends the user's text and an empty assistant placeholder and
// returns the request to send. Blank text is ignored (nil request, nil
// error). While busy it returns ErrBusy and leaves the transcript alone.
func (c *Controller) Submit(text string) (*Request, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if c.phase != PhaseIdle {
		slog.Debug("transcript_submit_rejected", "phase", c.phase.String())
		return nil, ErrBusy
	}
	c.stopReveal()

	c.messages = append(c.messages,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant},
	)
	c.phase = PhaseSending
	c.pending = c.nextID()

	slog.Debug("transcript_submit", "request_id", c.pending, "messages", len(c.messages))
	return &Request{
		ID:        c.pending,
		Message:   text,
		SessionID: c.sessionID,
	}, nil
}

// Resolve handles a successful reply to request reqID and starts its
// reveal. It returns the reveal id to tick and whether ticks are needed;
// an empty reply completes at once. Replies to stale requests are dropped.
func (c *Controller) Resolve(reqID uint64, reply string) (uint64, bool) {
	if !c.awaiting(reqID) {
		slog.Debug("transcript_reply_stale", "request_id", reqID)
		return 0, false
	}
	c.pending = 0

	target := []rune(reply)
	if len(target) == 0 {
		c.commit("")
		return 0, false
	}

	c.reveal = &Reveal{ID: c.nextID(), target: target}
	c.phase = PhaseRevealing
	slog.Debug("transcript_reveal_start", "reveal_id", c.reveal.ID, "runes", len(target))
	return c.reveal.ID, true
}

// Fail handles a failed request: the placeholder becomes FallbackText and
// the controller is idle again without revealing anything.
func (c *Controller) Fail(reqID uint64, err error) bool {
	if !c.awaiting(reqID) {
		return false
	}
	c.pending = 0
	slog.Warn("transcript_request_failed", "request_id", reqID, "error", err)
	c.commit(FallbackText)
	return true
}

// Tick reveals one more character of the active reveal. It returns true
// while characters remain. Ticks for any other reveal id are ignored.
func (c *Controller) Tick(revealID uint64) bool {
	if c.reveal == nil || c.reveal.ID != revealID {
		return false
	}
	c.reveal.advance()
	if !c.reveal.Done() {
		return true
	}
	target := c.reveal.Target()
	c.reveal = nil
	c.commit(target)
	slog.Debug("transcript_reveal_done", "reveal_id", revealID)
	return false
}

// Cancel stops the active reveal, if any, and commits the full reply so
// the transcript never keeps a partial message. Outstanding ticks for the
// cancelled reveal become no-ops.
func (c *Controller) Cancel() {
	if c.reveal == nil {
		return
	}
	target := c.reveal.Target()
	c.stopReveal()
	c.commit(target)
}

// Clear empties the transcript. It fails with ErrBusy while busy.
func (c *Controller) Clear() error {
	if c.phase != PhaseIdle {
		return ErrBusy
	}
	c.messages = nil
	return nil
}

// Messages returns the transcript as it should be displayed, with the
// active reveal projected onto the last message.
func (c *Controller) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	if c.reveal != nil && len(out) > 0 {
		out[len(out)-1].Content = c.reveal.Visible()
	}
	return out
}

// Len returns the number of messages.
func (c *Controller) Len() int {
	return len(c.messages)
}

// ActiveReveal returns a copy of the reveal in progress.
func (c *Controller) ActiveReveal() (Reveal, bool) {
	if c.reveal == nil {
		return Reveal{}, false
	}
	return *c.reveal, true
}

// LastReply returns the most recent completed assistant message.
func (c *Controller) LastReply() (string, bool) {
	end := len(c.messages)
	if c.phase != PhaseIdle {
		end-- // placeholder still in flight
	}
	for i := end - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant && c.messages[i].Content != "" {
			return c.messages[i].Content, true
		}
	}
	return "", false
}

// Phase returns the current busy phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Busy reports whether a submission would be rejected.
func (c *Controller) Busy() bool {
	return c.phase != PhaseIdle
}

// Typing reports whether an assistant reply is pending or being revealed.
// The in-progress message is always the last one.
func (c *Controller) Typing() bool {
	return c.phase == PhaseSending || c.phase == PhaseRevealing
}

// Toggle flips the chat panel visibility and returns the new value.
func (c *Controller) Toggle() bool {
	c.open = !c.open
	return c.open
}

// IsOpen reports whether the chat panel is visible.
func (c *Controller) IsOpen() bool {
	return c.open
}

func (c *Controller) awaiting(reqID uint64) bool {
	return c.phase == PhaseSending && c.pending != 0 && c.pending == reqID
}

// commit writes content into the placeholder and returns to idle.
func (c *Controller) commit(content string) {
	if n := len(c.messages); n > 0 && c.messages[n-1].Role == RoleAssistant {
		c.messages[n-1].Content = content
	} else {
		c.messages = append(c.messages, Message{Role: RoleAssistant, Content: content})
	}
	c.phase = PhaseIdle
}

func (c *Controller) stopReveal() {
	if c.reveal != nil {
		slog.Debug("transcript_reveal_cancel", "reveal_id", c.reveal.ID)
	}
	c.reveal = nil
}

func (c *Controller) nextID() uint64 {
	c.lastID++
	return c.lastID
}
