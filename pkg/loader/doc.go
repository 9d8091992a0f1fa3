// Package loader discovers pipelines on disk and instantiates them.
//
// Every pipeline lives in its own folder under a root directory (by default "pipelines"). A folder holds a
// config.yaml whose metadata.classname names the type to construct. Folders whose name starts with an underscore
// are ignored.
//
// Types are resolved through an explicit Registry filled at startup rather than by reflection: registering a
// folder name and class name with a factory is what makes a pipeline loadable.
package loader
