package pipeline

import (
	"github.com/pkg/errors"
)

type state int

const (
	uninitialized state = iota
	ready
)

// Base holds the results of an evaluation. The zero value is uninitialised.
type Base struct {
	state         state
	pipeline      string
	diagram       string
	boundingBoxes []any
}

// Ready stores the results of an evaluation.
func (b *Base) Ready(pipeline, diagram string, boundingBoxes []any) {
	b.pipeline = pipeline
	b.diagram = diagram
	b.boundingBoxes = boundingBoxes
	b.state = ready
}

// Evaluate always fails, concrete pipelines must provide their own.
func (b *Base) Evaluate(_, _ map[string]any, _, _ int, _ Elements) (string, error) {
	return "", ErrNotImplemented
}

// Pipeline returns the pipeline description.
func (b *Base) Pipeline() (string, error) {
	if b.state != ready {
		return "", errors.Wrap(ErrNotDefined, "pipeline")
	}

	return b.pipeline, nil
}

// Diagram returns the path of the rendered diagram.
func (b *Base) Diagram() (string, error) {
	if b.state != ready {
		return "", errors.Wrap(ErrNotDefined, "diagram")
	}

	return b.diagram, nil
}

// BoundingBoxes returns the bounding boxes.
func (b *Base) BoundingBoxes() ([]any, error) {
	if b.state != ready {
		return nil, errors.Wrap(ErrNotDefined, "bounding boxes")
	}

	return b.boundingBoxes, nil
}

var _ Pipeline = (*Base)(nil)
