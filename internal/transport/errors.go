package transport

// ErrorCategory is the coarse failure taxonomy surfaced to callers.
type ErrorCategory string

const (
	// CategoryTimeout: the outbound call exceeded its deadline.
	CategoryTimeout ErrorCategory = "timeout"
	// CategoryNetwork: no response was received at all.
	CategoryNetwork ErrorCategory = "network"
	// CategoryRemoteRejected: the service answered but declined the request.
	CategoryRemoteRejected ErrorCategory = "remote-rejected"
	// CategoryUnknown: anything that doesn't fit the above.
	CategoryUnknown ErrorCategory = "unknown"
)

// SendError is a categorized delivery failure.
//
// Description is the caller-visible diagnostic; it stays generic for
// transport failures. Err keeps the underlying cause for logs only, so
// the network vs malformed-response distinction never leaks into the
// protocol-visible text.
type SendError struct {
	Category    ErrorCategory
	Description string
	Err         error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return string(e.Category) + ": " + e.Err.Error()
	}
	return string(e.Category) + ": " + e.Description
}

func (e *SendError) Unwrap() error { return e.Err }
