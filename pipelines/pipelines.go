// Package pipelines registers the built-in pipelines. Each sub-package lives next to the config.yaml that
// selects it.
package pipelines

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-pipeline-loader/pipelines/simplevs"
	"github.com/askiada/go-pipeline-loader/pkg/loader"
)

var registrations = map[string]func(*loader.Registry) error{
	simplevs.Name: simplevs.Register,
}

// Register adds every built-in pipeline to registry.
func Register(registry *loader.Registry) error {
	for name, register := range registrations {
		err := register(registry)
		if err != nil {
			return errors.Wrapf(err, "unable to register %s", name)
		}
	}

	return nil
}

// NewRegistry returns a registry holding every built-in pipeline.
func NewRegistry() (*loader.Registry, error) {
	registry := loader.NewRegistry()

	err := Register(registry)
	if err != nil {
		return nil, err
	}

	return registry, nil
}
