package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the envelope returned by a [Dispatcher] for a successful
// request.
type Response struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Data is the raw response payload. It is empty for responses without
	// a body.
	Data json.RawMessage
}

// Decode unmarshals the payload into v.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("decode response: empty payload")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
