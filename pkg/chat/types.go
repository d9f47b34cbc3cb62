package chat

import "fmt"

// Request is the body of POST /chat.
type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Reply is the decoded body of a successful POST /chat.
type Reply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

type clearRequest struct {
	SessionID string `json:"session_id"`
}

// errorBody is what the backend sends alongside non-2xx statuses.
type errorBody struct {
	Error    string `json:"error"`
	Response string `json:"response"`
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("chat backend returned status %d: %s", e.StatusCode, e.Message)
}
