package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	// processing stage
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrInvalidInput           = errors.New("invalid input")
	ErrTransformFailed        = errors.New("transform failed")
	ErrStorageFailed          = errors.New("storage failed")
	ErrArtifactExists         = errors.New("artifact already exists")
	ErrHandleGenerationFailed = errors.New("retrieval handle generation failed")
	// ErrEventPublishFailed is returned together with a usable result.
	ErrEventPublishFailed = errors.New("event publish failed")

	// metadata stage
	ErrMalformedEvent    = errors.New("malformed event")
	ErrUnsupportedSchema = errors.New("unsupported event schema version")
	ErrSinkUnavailable   = errors.New("metadata sink unavailable")
	ErrRecordRejected    = errors.New("metadata record rejected")
)

// Retryable reports whether redelivering the same event can succeed.
func Retryable(err error) bool {
	return errors.Is(err, ErrSinkUnavailable)
}
