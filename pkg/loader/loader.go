package loader

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-pipeline-loader/pkg/pipeline"
)

// Loader lists, reads and instantiates the pipelines found under a root directory.
type Loader struct {
	registry *Registry
	logger   *slog.Logger
	root     string
}

// New creates a new loader resolving types through registry.
func New(registry *Registry, opts ...Option) *Loader {
	if registry == nil {
		registry = NewRegistry()
	}

	ldr := &Loader{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		root:     DefaultRoot,
	}

	for _, opt := range opts {
		opt(ldr)
	}

	if ldr.root == "" {
		ldr.root = DefaultRoot
	}

	return ldr
}

// Root returns the pipelines root directory.
func (l *Loader) Root() string {
	return l.root
}

// List returns the names of the pipeline folders, sorted. Folders starting with an underscore are skipped.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list pipelines in %s", l.root)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "_") {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(l.root, entry.Name()))
			isDir = err == nil && info.IsDir()
		}

		if !isDir {
			continue
		}

		names = append(names, entry.Name())
	}

	l.logger.Debug("listed pipelines", "root", l.root, "count", len(names))

	return names, nil
}

// Config reads and parses the config of the pipeline folder name. The file is read again on every call.
func (l *Loader) Config(name string) (Config, error) {
	configPath, err := l.resolveConfig(name)
	if err != nil {
		return nil, err
	}

	cfg, err := decodeConfig(configPath)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("read pipeline config", "pipeline", name, "path", configPath)

	return cfg, nil
}

// resolveConfig returns the real path of the config file of name. It must exist and live under the real
// path of the root.
func (l *Loader) resolveConfig(name string) (string, error) {
	rootDir, err := realPath(l.root)
	if err != nil {
		return "", errors.Wrapf(err, "unable to resolve pipelines root %s", l.root)
	}

	candidate := filepath.Join(l.root, name, ConfigFileName)

	configPath, err := realPath(candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %s could not be resolved: %w", ErrNotFound, candidate, err)
	}

	rel, err := filepath.Rel(rootDir, configPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		l.logger.Warn("rejected pipeline config outside of root", "pipeline", name, "path", configPath)

		return "", errors.Wrap(ErrInvalidPath, name)
	}

	return configPath, nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// Load reads the config of the pipeline folder name and creates a new instance of the type named by
// metadata.classname. A new instance is created on every call.
func (l *Loader) Load(name string) (pipeline.Pipeline, Config, error) {
	cfg, err := l.Config(name)
	if err != nil {
		return nil, nil, err
	}

	classname := cfg.Classname()
	if classname == "" {
		return nil, nil, errors.Wrapf(ErrMissingClassname, "pipeline %s", name)
	}

	factory, err := l.registry.Lookup(name, classname)
	if err != nil {
		return nil, nil, err
	}

	pipe := factory()
	if pipe == nil {
		return nil, nil, errors.Wrapf(ErrClassNotFound, "factory for %s.%s returned nil", name, classname)
	}

	l.logger.Debug("loaded pipeline", "pipeline", name, "classname", classname)

	return pipe, cfg, nil
}

// List returns the pipeline folder names under root.
func List(root string) ([]string, error) {
	return New(nil, WithRoot(root)).List()
}

// ReadConfig returns the config of the pipeline folder name under root.
func ReadConfig(name, root string) (Config, error) {
	return New(nil, WithRoot(root)).Config(name)
}

// Load instantiates the pipeline folder name under root using registry.
func Load(registry *Registry, name, root string) (pipeline.Pipeline, Config, error) {
	return New(registry, WithRoot(root)).Load(name)
}
