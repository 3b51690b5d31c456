package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a request is missing the email body
var ErrInvalidInput = errors.New("invalid input: email body is required")

var errMissingScore = errors.New("response is missing the score field")

// UpstreamServiceError indicates the call to the LLM provider failed or
// timed out. Details are logged server-side; callers only see a generic
// message.
type UpstreamServiceError struct {
	Provider string
	Err      error
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("upstream %s call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamServiceError) Unwrap() error {
	return e.Err
}

// ResponseFormatError indicates the model replied but the reply could not
// be parsed into a valid verdict. Raw preserves the original text for
// diagnosis.
type ResponseFormatError struct {
	Raw string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

// ArtifactLoadError indicates the persisted classifier artifacts are
// missing or corrupt. Fatal for any request that needs a subject hint.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("failed to load model artifact %q: %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}
