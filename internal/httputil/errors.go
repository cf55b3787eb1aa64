package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrUnauthenticated is returned by credential-gated calls when no
	// credential is present. No request is sent in that case.
	ErrUnauthenticated = errors.New("you are not logged in")

	// ErrNetworkUnavailable matches every transport level failure.
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// RequestFailedError is returned for non-2xx responses.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// NetworkError wraps a transport failure. Its message is generic and
// the cause stays reachable through errors.Is/As.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return ErrNetworkUnavailable.Error()
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetworkUnavailable, e.Cause}
}

// MessageFrom extracts the user facing message of a failed response: the
// "message" field of a JSON object body, else its "error" field, else the
// "<status> <status text>" line.
func MessageFrom(body []byte, status string) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"message", "error"} {
			if s, ok := fields[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return status
}

// StatusLine renders "<code> <text>", filling the reason phrase in when the
// server omitted it.
func StatusLine(code int, status string) string {
	status = strings.TrimSpace(status)
	if status == "" || status == strconv.Itoa(code) {
		return fmt.Sprintf("%d %s", code, http.StatusText(code))
	}
	return status
}
