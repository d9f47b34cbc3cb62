package chat

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc) *Client {
	return &Client{
		BaseURL:    "http://chat.test",
		HTTPClient: &http.Client{Transport: rt},
	}
}

func newHTTPResponse(req *http.Request, status int, body string) *http.Response {
	resp := &http.Response{
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Request:    req,
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
