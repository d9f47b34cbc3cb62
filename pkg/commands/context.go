package commands

import (
	"strings"

	"cinemax_cli/pkg/feed"
)

// Context contains everything a command may read
type Context struct {
	Catalog   feed.Catalog
	SessionID string
	Args      []string
}

// NewContext creates a new command context
func NewContext(catalog feed.Catalog, sessionID string, args []string) *Context {
	return &Context{
		Catalog:   catalog,
		SessionID: sessionID,
		Args:      args,
	}
}

// Arg joins the arguments into a single value.
func (c *Context) Arg() string {
	return strings.TrimSpace(strings.Join(c.Args, " "))
}
