package pipeline

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotDefined is returned by an accessor read before the pipeline has been evaluated.
	ErrNotDefined = errors.New("not defined")
	// ErrNotImplemented is returned by Base.Evaluate.
	ErrNotImplemented = errors.New("evaluate must be implemented by the concrete pipeline")
)
