// Package pipeline defines the contract every loadable pipeline implements.
//
// A pipeline is evaluated once with the constants, parameters, channel counts and available elements of the
// target platform. Evaluation produces three results: the textual pipeline description, the path of a rendered
// diagram and a list of bounding boxes annotating that diagram. Concrete pipelines embed Base, which stores those
// results and refuses to hand them out before they have been produced.
//
// Base is deliberately incomplete: calling Evaluate on it returns ErrNotImplemented. A concrete pipeline overrides
// Evaluate and calls Ready once its results are known.
package pipeline
