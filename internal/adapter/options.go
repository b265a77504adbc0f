package adapter

// RequestOption customises a single dispatched request.
type RequestOption func(*RequestOptions)

// RequestOptions is the resolved set of per-request options.
type RequestOptions struct {
	// Action is a short human-readable label ("get billing info") used in
	// log entries and error messages.
	Action string
}

// WithAction labels the request for diagnostics.
func WithAction(action string) RequestOption {
	return func(o *RequestOptions) {
		o.Action = action
	}
}

// NewRequestOptions applies opts in order and returns the result.
func NewRequestOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o RequestOptions) label(method, path string) string {
	if o.Action != "" {
		return o.Action
	}
	return method + " " + path
}
