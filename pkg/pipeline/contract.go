package pipeline

// Pipeline is implemented by every loadable pipeline.
type Pipeline interface {
	// Evaluate computes the pipeline description for the given platform and stores the diagram and bounding
	// boxes as a side effect. It returns the pipeline description.
	Evaluate(
		constants, parameters map[string]any,
		regularChannels, inferenceChannels int,
		elements Elements,
	) (string, error)
	// Pipeline returns the description computed by Evaluate.
	Pipeline() (string, error)
	// Diagram returns the path of the diagram rendered by Evaluate.
	Diagram() (string, error)
	// BoundingBoxes returns the annotations computed by Evaluate.
	BoundingBoxes() ([]any, error)
}

// Element is a media element available on the platform, e.g. {Plugin: "va", Name: "vah264dec"}.
type Element struct {
	Plugin string
	Name   string
}

// Elements is the ordered list of available elements.
type Elements []Element

// Has reports whether an element with the given name is available.
func (e Elements) Has(name string) bool {
	for _, elem := range e {
		if elem.Name == name {
			return true
		}
	}

	return false
}
