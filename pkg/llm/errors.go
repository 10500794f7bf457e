package llm

import "errors"

// ErrMissingCredential is returned when a stream is attempted on a provider
// that holds no credential. The check happens before any network I/O.
var ErrMissingCredential = errors.New("missing credential")

// ErrCredentialsNotFound is returned by Authenticate when every resolution
// source (environment, secure store) came up empty. The host is expected to
// prompt the user and call SetCredential.
var ErrCredentialsNotFound = errors.New("credentials not found")

// TransportError wraps a network-level failure, including low-speed aborts
// and mid-stream disconnects.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError wraps a malformed or unexpected wire payload, such as an
// unparseable stream fragment or a non-2xx response.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string { return "protocol: " + e.Err.Error() }
func (e *ProtocolError) Unwrap() error { return e.Err }

// TokenizerError wraps a token-counting failure (unknown encoder key,
// malformed vocabulary). A count is never partially returned alongside one.
type TokenizerError struct {
	Err error
}

func (e *TokenizerError) Error() string { return "tokenizer: " + e.Err.Error() }
func (e *TokenizerError) Unwrap() error { return e.Err }
