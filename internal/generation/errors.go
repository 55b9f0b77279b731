package generation

import "errors"

var (
	// ErrAbandoned is returned when the consumer went away before the
	// result arrived. The result, if it ever arrives, is dropped.
	ErrAbandoned = errors.New("generation abandoned")

	// ErrNoSelectedScript is returned by thumbnail generation for items
	// without a valid selected script. Nothing is requested in that case.
	ErrNoSelectedScript = errors.New("item has no selected script")
)

const (
	contentFailedMessage     = "Failed to generate content. Please try again."
	contentUnexpectedMessage = "An unexpected error occurred. Please try again."
	thumbFailedMessage       = "Failed to generate thumbnail"
	thumbUnexpectedMessage   = "An error occurred while generating the thumbnail"
)

// GenerationError is a failed generation. Message is meant for the user
// and the operation can be retried as is.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func serviceError(reported, fallback string) *GenerationError {
	if reported == "" {
		reported = fallback
	}
	return &GenerationError{Message: reported}
}
