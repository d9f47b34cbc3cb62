// Package session owns the chat session identifier and its persistence.
// The identifier is generated once per client and then read back
// unchanged on every start.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key is the store key holding the session identifier.
const Key = "chat_session_id"

const suffixLen = 13

// ErrNotFound is returned by a Store when the key is absent.
var ErrNotFound = errors.New("session: key not found")

// Store is a client-scoped key-value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// NewID builds a timestamp-derived identifier with a random suffix.
func NewID(now time.Time) string {
	prefix := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + suffix[:suffixLen]
}

// LoadOrCreate returns the stored identifier, generating and writing one
// if the store has none.
func LoadOrCreate(store Store, now func() time.Time) (string, error) {
	id, err := store.Get(Key)
	if err == nil && strings.TrimSpace(id) != "" {
		slog.Debug("session_loaded", "session_id", id)
		return id, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("failed to read session id: %w", err)
	}

	id = NewID(now())
	if err := store.Set(Key, id); err != nil {
		return "", fmt.Errorf("failed to store session id: %w", err)
	}
	slog.Info("session_created", "session_id", id)
	return id, nil
}

// Reset replaces the stored identifier with a fresh one.
func Reset(store Store, now func() time.Time) (string, error) {
	if err := store.Delete(Key); err != nil && !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("failed to delete session id: %w", err)
	}
	return LoadOrCreate(store, now)
}
