package loader

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when the config file of a pipeline cannot be resolved.
	ErrNotFound = errors.New("config not found")
	// ErrInvalidPath is returned when the config file resolves outside of the pipelines root.
	ErrInvalidPath = errors.New("invalid pipeline name or path traversal detected")
	// ErrMissingClassname is returned when metadata.classname is absent or empty.
	ErrMissingClassname = errors.New("classname not defined in config")
	// ErrPipelineNotRegistered is returned when no type was registered for a pipeline folder.
	ErrPipelineNotRegistered = errors.New("pipeline not registered")
	// ErrClassNotFound is returned when the pipeline has no type registered under the classname.
	ErrClassNotFound = errors.New("class not found")
	// ErrInvalidRegistration is returned by Registry.Register for unusable entries.
	ErrInvalidRegistration = errors.New("invalid registration")
)
