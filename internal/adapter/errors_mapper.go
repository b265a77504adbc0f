package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// statusError converts a non-2xx status into an error carrying the status
// code and the server's message. Known statuses wrap a sentinel from
// errors.go; 2xx yields nil.
func statusError(statusCode int, body []byte) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	if sentinel, ok := statusErrors[statusCode]; ok {
		return fmt.Errorf("%w (http %d): %s", sentinel, statusCode, msg)
	}
	return fmt.Errorf("http %d: %s", statusCode, msg)
}
