package loader

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
)

// Factory creates a new, unevaluated pipeline.
type Factory func() pipeline.Pipeline

// Registry maps a pipeline folder name and a class name to a factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]map[string]Factory),
	}
}

// Register makes classname loadable from the pipeline folder name.
func (r *Registry) Register(name, classname string, factory Factory) error {
	switch {
	case name == "" || classname == "":
		return errors.Wrap(ErrInvalidRegistration, "name and classname must be set")
	case strings.HasPrefix(name, "_"):
		return errors.Wrapf(ErrInvalidRegistration, "pipeline %s is hidden", name)
	case factory == nil:
		return errors.Wrapf(ErrInvalidRegistration, "factory for %s.%s must be set", name, classname)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	classes, ok := r.factories[name]
	if !ok {
		classes = make(map[string]Factory)
		r.factories[name] = classes
	}

	if _, ok := classes[classname]; ok {
		return errors.Wrapf(ErrInvalidRegistration, "%s.%s already registered", name, classname)
	}

	classes[classname] = factory

	return nil
}

// Lookup returns the factory registered for classname in the pipeline folder name.
func (r *Registry) Lookup(name, classname string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes, ok := r.factories[name]
	if !ok {
		return nil, errors.Wrap(ErrPipelineNotRegistered, name)
	}

	factory, ok := classes[classname]
	if !ok {
		return nil, errors.Wrapf(ErrClassNotFound, "%s has no class %s", name, classname)
	}

	return factory, nil
}

// Names returns the registered pipeline folder names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
