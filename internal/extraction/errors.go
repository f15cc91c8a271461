package extraction

import "errors"

var (
	// ErrNoFile means the request carried no file content.
	ErrNoFile = errors.New("no file uploaded")
	// ErrNotConfigured means the AI credential is absent from the environment.
	ErrNotConfigured = errors.New("extraction not configured")
	// ErrUpstream wraps failures of the AI capability.
	ErrUpstream = errors.New("upstream extraction failed")
	// ErrStorage wraps persistence failures.
	ErrStorage = errors.New("storage failed")
)
