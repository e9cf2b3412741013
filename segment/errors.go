package segment

import "errors"

// ErrEmptyInput is returned for empty or whitespace-only input. Zero
// sentences must be signaled, never passed downstream as a silently empty
// artifact.
var ErrEmptyInput = errors.New("input text is empty")
