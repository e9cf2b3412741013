package pipeline

import "errors"

// ErrArtifactRepositoryRequired is returned when an artifact repository is not provided.
var ErrArtifactRepositoryRequired = errors.New("artifact repository required")
