// Package commands implements the slash commands typed into the chat
// input. They are answered locally from the catalog and never reach the
// chat backend.
package commands

import (
	"sort"
	"strings"

	"cinemax_cli/pkg/feed"
)

// Action is a side effect the UI applies after a command runs.
type Action int

const (
	ActionNone Action = iota
	ActionSetGenre
	ActionClearChat
	ActionShowMovie
)

// Result represents the result of a command execution
type Result struct {
	Title   string
	Content string // markdown
	Error   error

	Action Action
	Genre  string     // ActionSetGenre; empty clears the filter
	Movie  feed.Movie // ActionShowMovie
}

// Handler is the interface for command handlers
type Handler interface {
	Execute(ctx *Context) *Result
	Name() string
	Description() string
}

// Dispatcher routes commands to their handlers
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher creates a new command dispatcher
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
	}

	// Register default handlers
	d.Register(&GenreHandler{})
	d.Register(&AllHandler{})
	d.Register(&FindHandler{})
	d.Register(&PriceHandler{})
	d.Register(&ShowtimeHandler{})
	d.Register(&PromosHandler{})
	d.Register(&ClearHandler{})
	d.Register(&SessionHandler{})
	d.Register(&HelpHandler{dispatcher: d})

	return d
}

// Register adds a handler to the dispatcher
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Name()] = h
}

// Dispatch executes a command by name
func (d *Dispatcher) Dispatch(cmdName string, ctx *Context) *Result {
	handler, ok := d.handlers[strings.ToLower(cmdName)]
	if !ok {
		return &Result{
			Title:   "Error",
			Content: "Unknown command: " + cmdName + ". Type /help for the list.",
		}
	}

	return handler.Execute(ctx)
}

// GetHandler returns a handler by name
func (d *Dispatcher) GetHandler(cmdName string) (Handler, bool) {
	h, ok := d.handlers[cmdName]
	return h, ok
}

// Handlers returns the registered handlers sorted by name.
func (d *Dispatcher) Handlers() []Handler {
	out := make([]Handler, 0, len(d.handlers))
	for _, h := range d.handlers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Parse splits chat input into a command name and its arguments. ok is
// false when the input is not a slash command.
func Parse(input string) (name string, args []string, ok bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") || fields[0] == "/" {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
