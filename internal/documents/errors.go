package documents

import "errors"

// ErrNotFound covers both a missing record and one owned by another user;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("document not found")
