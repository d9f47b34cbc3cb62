package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cinemax_cli/pkg/logging"
)

const (
	chatPath         = "/chat"
	clearHistoryPath = "/chat/history/clear"
	maxErrorPreview  = 200
)

// Sender is the part of the backend the UI depends on.
type Sender interface {
	Send(ctx context.Context, req Request) (Reply, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

// Client talks to the chat backend. Requests are never retried.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a chat client. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Send posts one user message and returns the backend's reply.
func (c *Client) Send(ctx context.Context, req Request) (Reply, error) {
	start := time.Now()
	slog.Info("chat_request_start",
		"session_id", req.SessionID,
		"message_len", len(req.Message),
	)

	body, status, err := c.post(ctx, chatPath, req)
	if err != nil {
		slog.Error("chat_request_error", "error", err)
		return Reply{}, err
	}
	ok := status >= 200 && status <= 299

	var raw struct {
		Response  *string `json:"response"`
		SessionID string  `json:"session_id"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		if !ok {
			err := newStatusError(status, body)
			slog.Error("chat_request_status", "status_code", status, "error", err)
			return Reply{}, err
		}
		slog.Error("chat_response_decode_error", "error", err)
		return Reply{}, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if raw.Response == nil {
		if !ok {
			err := newStatusError(status, body)
			slog.Error("chat_request_status", "status_code", status, "error", err)
			return Reply{}, err
		}
		slog.Error("chat_response_missing_field", "field", "response")
		return Reply{}, errors.New("chat response has no response field")
	}
	if !ok {
		// a failing backend may still answer with text for the user
		slog.Warn("chat_request_status_with_reply", "status_code", status)
	}

	slog.Info("chat_request_done",
		"status_code", status,
		"response_len", len(*raw.Response),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Reply{Response: *raw.Response, SessionID: raw.SessionID}, nil
}

// ClearHistory asks the backend to forget the conversation of sessionID.
// A session the backend never saw is not an error.
func (c *Client) ClearHistory(ctx context.Context, sessionID string) error {
	body, status, err := c.post(ctx, clearHistoryPath, clearRequest{SessionID: sessionID})
	if err != nil {
		slog.Error("chat_clear_error", "error", err)
		return err
	}
	if status == http.StatusNotFound {
		slog.Debug("chat_clear_no_history", "session_id", sessionID)
		return nil
	}
	if status < 200 || status > 299 {
		return newStatusError(status, body)
	}
	slog.Info("chat_clear_done", "session_id", sessionID)
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}
	if logging.TraceEnabled() {
		logging.Trace("chat_request_body", "path", path, "json", string(data))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if logging.TraceEnabled() {
		logging.Trace("chat_response_body", "path", path, "status_code", resp.StatusCode, "json", string(body))
	}
	return body, resp.StatusCode, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func newStatusError(status int, body []byte) *StatusError {
	var payload errorBody
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error
		if message == "" {
			message = payload.Response
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if len(message) > maxErrorPreview {
		message = message[:maxErrorPreview] + "..."
	}
	return &StatusError{StatusCode: status, Message: message}
}
